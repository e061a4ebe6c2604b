// Package fs persists the retrieval index on disk with atomic update
// semantics: a new index is written to a temporary file and renamed over
// the old one, so readers never see a partial index.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/tfidf"
)

// IndexStore saves and loads a tf-idf index as JSON at a fixed path.
type IndexStore struct {
	path string
}

// NewIndexStore creates an IndexStore for the given file path.
func NewIndexStore(path string) *IndexStore {
	return &IndexStore{path: path}
}

// Path returns the index file path.
func (s *IndexStore) Path() string {
	return s.path
}

// Save writes the index to path.tmp and renames it into place.
func (s *IndexStore) Save(ctx context.Context, idx *tfidf.Index) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(idx)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the index from disk.
// Returns ENOTFOUND if no index has been saved and EINTERNAL if the file
// cannot be decoded.
func (s *IndexStore) Load(ctx context.Context) (*tfidf.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, cdpdoc.Errorf(cdpdoc.ENOTFOUND, "index not found at %s", s.path)
	} else if err != nil {
		return nil, err
	}

	var idx tfidf.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, cdpdoc.Errorf(cdpdoc.EINTERNAL, "index at %s is corrupt: %v", s.path, err)
	}
	return &idx, nil
}

// LoadCurrent loads the index and verifies it was built from the given
// corpus. Returns EUNAVAILABLE when the corpus has changed since the
// index was built; the caller should rebuild.
func (s *IndexStore) LoadCurrent(ctx context.Context, docs []*cdpdoc.Document) (*tfidf.Index, error) {
	idx, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if idx.CorpusHash != tfidf.CorpusHash(docs) {
		return nil, cdpdoc.Errorf(cdpdoc.EUNAVAILABLE, "index at %s is stale: corpus has changed since it was built", s.path)
	}
	return idx, nil
}
