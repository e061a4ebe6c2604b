package tfidf_test

import (
	"context"
	"testing"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetriever(t *testing.T) *tfidf.Retriever {
	t.Helper()
	idx, err := tfidf.Build(testCorpus(), fieldsTokenizer{})
	require.NoError(t, err)
	return tfidf.NewRetriever(idx)
}

func TestRetriever_Retrieve(t *testing.T) {
	t.Parallel()

	t.Run("ranks the matching document first", func(t *testing.T) {
		t.Parallel()

		r := testRetriever(t)
		query := cdpdoc.Query{Tokens: []string{"source", "write", "key"}}

		matches, err := r.Retrieve(context.Background(), query, cdpdoc.RetrieveOptions{})
		require.NoError(t, err)

		require.NotEmpty(t, matches)
		assert.Equal(t, "seg-1", matches[0].Document.ID)
		assert.Greater(t, matches[0].Score, cdpdoc.DefaultMinScore)
	})

	t.Run("descending score order", func(t *testing.T) {
		t.Parallel()

		r := testRetriever(t)
		query := cdpdoc.Query{Tokens: []string{"audience", "scoring"}}

		matches, err := r.Retrieve(context.Background(), query, cdpdoc.RetrieveOptions{})
		require.NoError(t, err)

		require.NotEmpty(t, matches)
		assert.Equal(t, "lyt-1", matches[0].Document.ID)
		for i := 1; i < len(matches); i++ {
			assert.LessOrEqual(t, matches[i].Score, matches[i-1].Score)
		}
	})

	t.Run("platform filter excludes other platforms", func(t *testing.T) {
		t.Parallel()

		r := testRetriever(t)
		query := cdpdoc.Query{Tokens: []string{"audience"}}

		matches, err := r.Retrieve(context.Background(), query, cdpdoc.RetrieveOptions{
			Platform: cdpdoc.PlatformMParticle,
		})
		require.NoError(t, err)

		require.Len(t, matches, 1)
		assert.Equal(t, "mp-1", matches[0].Document.ID)
	})

	t.Run("out-of-vocabulary query returns no matches", func(t *testing.T) {
		t.Parallel()

		r := testRetriever(t)
		query := cdpdoc.Query{Tokens: []string{"weather", "tomorrow"}}

		matches, err := r.Retrieve(context.Background(), query, cdpdoc.RetrieveOptions{})
		require.NoError(t, err)

		assert.Empty(t, matches)
	})

	t.Run("top-k caps the result count", func(t *testing.T) {
		t.Parallel()

		r := testRetriever(t)
		query := cdpdoc.Query{Tokens: []string{"audience"}}

		matches, err := r.Retrieve(context.Background(), query, cdpdoc.RetrieveOptions{TopK: 1})
		require.NoError(t, err)

		assert.Len(t, matches, 1)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		r := testRetriever(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.Retrieve(ctx, cdpdoc.Query{Tokens: []string{"audience"}}, cdpdoc.RetrieveOptions{})

		assert.Error(t, err)
	})
}
