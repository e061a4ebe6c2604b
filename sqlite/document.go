package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/askcdp/cdpdoc"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cdpdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements cdpdoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document. The ID, content hash and fetch
// time are assigned here.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *cdpdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, platform, title, source_url, content, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, string(doc.Platform), doc.Title, doc.SourceURL, doc.Content, doc.ContentHash,
		doc.Position, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*cdpdoc.Document, error) {
	var doc cdpdoc.Document
	var platform, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, platform, title, source_url, content, content_hash, position, fetched_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &platform, &doc.Title, &doc.SourceURL,
		&doc.Content, &doc.ContentHash, &doc.Position, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, cdpdoc.Errorf(cdpdoc.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.Platform = cdpdoc.Platform(platform)
	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, ordered by
// platform and position. The ordering is what makes index builds
// deterministic across runs.
func (s *DocumentService) FindDocuments(ctx context.Context, filter cdpdoc.DocumentFilter) ([]*cdpdoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, platform, title, source_url, content, content_hash, position, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Platform != nil {
		query.WriteString(" AND platform = ?")
		args = append(args, string(*filter.Platform))
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY platform ASC, position ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*cdpdoc.Document
	for rows.Next() {
		var doc cdpdoc.Document
		var platform, fetchedAt string

		if err := rows.Scan(&doc.ID, &platform, &doc.Title, &doc.SourceURL,
			&doc.Content, &doc.ContentHash, &doc.Position, &fetchedAt); err != nil {
			return nil, err
		}

		doc.Platform = cdpdoc.Platform(platform)
		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocumentsByPlatform removes all documents for a platform.
func (s *DocumentService) DeleteDocumentsByPlatform(ctx context.Context, platform cdpdoc.Platform) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE platform = ?", string(platform))
	return err
}
