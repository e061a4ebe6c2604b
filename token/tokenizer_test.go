package token_test

import (
	"testing"

	"github.com/askcdp/cdpdoc/token"
	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	tok := token.NewTokenizer()

	t.Run("case-folds and strips punctuation", func(t *testing.T) {
		t.Parallel()

		got := tok.Tokenize("Track EVENTS, easily!")

		assert.Equal(t, []string{"track", "event", "easili"}, got)
	})

	t.Run("removes stopwords", func(t *testing.T) {
		t.Parallel()

		got := tok.Tokenize("how do I set up the source")

		assert.NotContains(t, got, "how")
		assert.NotContains(t, got, "do")
		assert.NotContains(t, got, "the")
		assert.Contains(t, got, "sourc")
	})

	t.Run("stems inflected forms to a common term", func(t *testing.T) {
		t.Parallel()

		a := tok.Tokenize("tracking")
		b := tok.Tokenize("tracked")

		assert.Equal(t, a, b)
	})

	t.Run("keeps alphanumeric terms", func(t *testing.T) {
		t.Parallel()

		got := tok.Tokenize("install sdk v2 on ios14")

		assert.Contains(t, got, "sdk")
		assert.Contains(t, got, "v2")
		assert.Contains(t, got, "ios14")
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		text := "Identify users and sync audiences to destinations."

		assert.Equal(t, tok.Tokenize(text), tok.Tokenize(text))
	})

	t.Run("empty and whitespace input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tok.Tokenize(""))
		assert.Empty(t, tok.Tokenize("  \n\t "))
	})
}
