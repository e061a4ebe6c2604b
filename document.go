package cdpdoc

import (
	"context"
	"time"
)

// Document represents a scraped documentation passage for one platform.
// Documents are produced by the offline scraper and are read-only at
// serve time.
type Document struct {
	ID          string    `json:"id"`
	Platform    Platform  `json:"platform"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if !d.Platform.Valid() {
		return Errorf(EINVALID, "document platform %q not supported", d.Platform)
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentService represents a service for managing the documentation corpus.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter,
	// ordered by platform and position.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocumentsByPlatform removes all documents for a platform.
	// Used before re-scraping a platform's documentation.
	DeleteDocumentsByPlatform(ctx context.Context, platform Platform) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string   `json:"id"`
	Platform  *Platform `json:"platform"`
	SourceURL *string   `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
