// Package api provides the REST client for the Promptify backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"promptify/internal/chat"
	"promptify/internal/docs"
	"promptify/internal/metrics"
)

// Client issues typed requests against the backend's REST endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	collector  *metrics.Collector
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets a client-wide request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithCollector records per-operation request timings into the collector.
func WithCollector(col *metrics.Collector) Option {
	return func(c *Client) { c.collector = col }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the given base URL. If baseURL is empty, the
// PROMPTIFY_SERVER_URL env var is used, falling back to localhost.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("PROMPTIFY_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080/api"
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved endpoint base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes a prepared request and decodes the JSON response into out
// (which may be nil for 204-style endpoints). Failures come back as *Error
// classified by kind and tagged with op.
func (c *Client) do(op string, req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.collector != nil {
			c.collector.Record(op, time.Since(start), true)
		}
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	// Non-2xx responses count as failures too.
	if c.collector != nil {
		failed := resp.StatusCode < 200 || resp.StatusCode > 299
		c.collector.Record(op, time.Since(start), failed)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("api call", "op", op, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Op:     op,
			Kind:   KindStatus,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &Error{Op: op, Kind: KindPayload, Err: fmt.Errorf("unmarshal response: %w", err)}
		}
	}
	return nil
}

// newJSONRequest builds a request with a JSON body.
func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Query sends a prompt to the backend's query endpoint and returns the
// synthesized answer.
func (c *Client) Query(ctx context.Context, prompt string) (string, error) {
	const op = "query"

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/query", map[string]string{"prompt": prompt})
	if err != nil {
		return "", err
	}

	var result struct {
		Answer string `json:"answer"`
	}
	if err := c.do(op, req, &result); err != nil {
		return "", err
	}
	return result.Answer, nil
}

// ListSessions returns all chat sessions known to the backend.
func (c *Client) ListSessions(ctx context.Context) ([]chat.Session, error) {
	const op = "list_sessions"

	req, err := c.newJSONRequest(ctx, http.MethodGet, "/chat/sessions", nil)
	if err != nil {
		return nil, err
	}

	var sessions []chat.Session
	if err := c.do(op, req, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSession retrieves one chat session by id.
func (c *Client) GetSession(ctx context.Context, id string) (*chat.Session, error) {
	const op = "get_session"

	req, err := c.newJSONRequest(ctx, http.MethodGet, "/chat/sessions/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var session chat.Session
	if err := c.do(op, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateSession creates a chat session with the given title.
func (c *Client) CreateSession(ctx context.Context, title string) (*chat.Session, error) {
	const op = "create_session"

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/chat/sessions", map[string]string{"title": title})
	if err != nil {
		return nil, err
	}

	var session chat.Session
	if err := c.do(op, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession deletes a chat session by id.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	const op = "delete_session"

	req, err := c.newJSONRequest(ctx, http.MethodDelete, "/chat/sessions/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do(op, req, nil)
}

// ListDocuments returns the backend's full document list.
func (c *Client) ListDocuments(ctx context.Context) ([]docs.Document, error) {
	const op = "list_documents"

	req, err := c.newJSONRequest(ctx, http.MethodGet, "/documents", nil)
	if err != nil {
		return nil, err
	}

	var documents []docs.Document
	if err := c.do(op, req, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

// IngestText submits raw text for ingestion and returns the stored document.
func (c *Client) IngestText(ctx context.Context, content string) (*docs.Document, error) {
	const op = "ingest_text"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ingest/text", strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	var doc docs.Document
	if err := c.do(op, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// IngestURL asks the backend to fetch and ingest the content behind a link.
func (c *Client) IngestURL(ctx context.Context, link string) (*docs.Document, error) {
	const op = "ingest_url"

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/ingest/url", map[string]string{"url": link})
	if err != nil {
		return nil, err
	}

	var doc docs.Document
	if err := c.do(op, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// IngestFile uploads a file as multipart form data (field name "file") and
// returns the stored document.
func (c *Client) IngestFile(ctx context.Context, name string, r io.Reader) (*docs.Document, error) {
	const op = "ingest_file"

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ingest/file", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var doc docs.Document
	if err := c.do(op, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument deletes a document by id.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	const op = "delete_document"

	req, err := c.newJSONRequest(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do(op, req, nil)
}
