// Package docs holds the in-memory document collection, its filter/sort
// pipeline, and the ingestion orchestration.
package docs

// Document is a stored document as the backend reports it. The id is
// assigned server-side on ingestion.
type Document struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content,omitempty"`
}
