package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/fs"
	"github.com/askcdp/cdpdoc/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldsTokenizer struct{}

func (fieldsTokenizer) Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(strings.ReplaceAll(text, ".", " ")))
}

func testCorpus() []*cdpdoc.Document {
	return []*cdpdoc.Document{
		{
			ID:          "seg-1",
			Platform:    cdpdoc.PlatformSegment,
			Title:       "Sources",
			Content:     "source write key setup",
			ContentHash: "h1",
		},
		{
			ID:          "lyt-1",
			Platform:    cdpdoc.PlatformLytics,
			Title:       "Audiences",
			Content:     "audience scoring behavior",
			ContentHash: "h2",
		},
	}
}

func buildIndex(t *testing.T, docs []*cdpdoc.Document) *tfidf.Index {
	t.Helper()
	idx, err := tfidf.Build(docs, fieldsTokenizer{})
	require.NoError(t, err)
	return idx
}

func TestIndexStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	// Given a built index saved to disk
	path := filepath.Join(t.TempDir(), "index.json")
	store := fs.NewIndexStore(path)
	idx := buildIndex(t, testCorpus())

	err := store.Save(context.Background(), idx)
	require.NoError(t, err)

	// And no temp file is left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	// When I load it back
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)

	// Then vocabulary, weights and fingerprint survive the round trip
	assert.Equal(t, idx.Vocabulary, loaded.Vocabulary)
	assert.Equal(t, idx.IDF, loaded.IDF)
	assert.Equal(t, idx.CorpusHash, loaded.CorpusHash)
	require.Len(t, loaded.Entries, len(idx.Entries))
	assert.Equal(t, idx.Entries[0].Document.ID, loaded.Entries[0].Document.ID)
	assert.Equal(t, idx.Entries[0].Vector, loaded.Entries[0].Vector)
}

func TestIndexStore_SaveReplacesExistingIndex(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.json")
	store := fs.NewIndexStore(path)

	require.NoError(t, store.Save(context.Background(), buildIndex(t, testCorpus())))

	smaller := testCorpus()[:1]
	require.NoError(t, store.Save(context.Background(), buildIndex(t, smaller)))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded.Entries, 1)
}

func TestIndexStore_LoadMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := fs.NewIndexStore(filepath.Join(t.TempDir(), "index.json"))

	_, err := store.Load(context.Background())

	assert.Equal(t, cdpdoc.ENOTFOUND, cdpdoc.ErrorCode(err))
}

func TestIndexStore_LoadCorruptReturnsInternal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := fs.NewIndexStore(path)

	_, err := store.Load(context.Background())

	assert.Equal(t, cdpdoc.EINTERNAL, cdpdoc.ErrorCode(err))
}

func TestIndexStore_LoadCurrent(t *testing.T) {
	t.Parallel()

	t.Run("matching corpus loads", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.json")
		store := fs.NewIndexStore(path)
		require.NoError(t, store.Save(context.Background(), buildIndex(t, testCorpus())))

		loaded, err := store.LoadCurrent(context.Background(), testCorpus())

		require.NoError(t, err)
		assert.Len(t, loaded.Entries, 2)
	})

	t.Run("changed corpus returns EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.json")
		store := fs.NewIndexStore(path)
		require.NoError(t, store.Save(context.Background(), buildIndex(t, testCorpus())))

		changed := testCorpus()
		changed[0].ContentHash = "h1-changed"

		_, err := store.LoadCurrent(context.Background(), changed)

		assert.Equal(t, cdpdoc.EUNAVAILABLE, cdpdoc.ErrorCode(err))
	})
}
