// Package token provides the snowball-backed tokenizer used by both the
// indexer and the query pipeline. Sharing one implementation keeps query
// terms in the same vector space as document terms.
package token

import (
	"strings"
	"unicode"

	"github.com/askcdp/cdpdoc"
	"github.com/kljensen/snowball/english"
)

// Ensure Tokenizer implements cdpdoc.Tokenizer at compile time.
var _ cdpdoc.Tokenizer = (*Tokenizer)(nil)

// Tokenizer normalizes text into index terms: case-folded, punctuation
// split, stopwords removed, stemmed with the snowball English stemmer.
// It is stateless and safe for concurrent use.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into normalized terms. The output is deterministic:
// the same text always yields the same token list.
func (t *Tokenizer) Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		tokens = append(tokens, english.Stem(w, false))
	}
	return tokens
}
