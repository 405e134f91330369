package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Client is the part of the API client the document service needs.
type Client interface {
	ListDocuments(ctx context.Context) ([]Document, error)
	DeleteDocument(ctx context.Context, id string) error
	IngestText(ctx context.Context, content string) (*Document, error)
	IngestFile(ctx context.Context, name string, r io.Reader) (*Document, error)
	IngestURL(ctx context.Context, url string) (*Document, error)
}

// Service coordinates document operations against the backend and keeps the
// local collection in sync. Every mutation of the store happens only after
// the corresponding server call succeeded.
type Service struct {
	store  *Store
	client Client
	logger *slog.Logger
}

// NewService creates a document service on top of a store and a client.
func NewService(store *Store, client Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, client: client, logger: logger}
}

// Store returns the underlying document store.
func (s *Service) Store() *Store {
	return s.store
}

// Refresh replaces the local collection with the backend's list. On failure
// the prior collection is left intact and the error is returned for a
// one-shot banner.
func (s *Service) Refresh(ctx context.Context) error {
	documents, err := s.client.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	s.store.Replace(documents)
	s.logger.Debug("documents refreshed", "count", len(documents))
	return nil
}

// Delete removes one document, locally only after the server confirmed.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	s.store.Remove(id)
	return nil
}

// DeleteSelected removes a set of documents. Each id is attempted
// independently: one failing deletion does not abort the rest. Documents
// whose deletion succeeded are removed locally; the failures come back as a
// single joined error.
func (s *Service) DeleteSelected(ctx context.Context, ids []string) error {
	deleted := make(map[string]bool, len(ids))
	var errs []error
	for _, id := range ids {
		if err := s.client.DeleteDocument(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("delete document %s: %w", id, err))
			continue
		}
		deleted[id] = true
	}
	s.store.RemoveMany(deleted)
	return errors.Join(errs...)
}

// IngestText sends text content for ingestion and folds the server's
// returned document into the collection. The submitted name is kept when
// the server does not assign one.
func (s *Service) IngestText(ctx context.Context, name, content string) (*Document, error) {
	doc, err := s.client.IngestText(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("ingest text: %w", err)
	}
	if doc.Name == "" {
		doc.Name = name
	}
	s.store.Upsert(*doc)
	return doc, nil
}

// UploadFile streams a local file to the backend and prepends the returned
// document.
func (s *Service) UploadFile(ctx context.Context, path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := s.client.IngestFile(ctx, filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", path, err)
	}
	s.store.Prepend(*doc)
	return doc, nil
}

// IngestURL registers a link for server-side retrieval and ingestion.
func (s *Service) IngestURL(ctx context.Context, name, url string) (*Document, error) {
	doc, err := s.client.IngestURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("ingest url: %w", err)
	}
	if doc.Name == "" {
		if name != "" {
			doc.Name = name
		} else {
			doc.Name = url
		}
	}
	s.store.Prepend(*doc)
	return doc, nil
}
