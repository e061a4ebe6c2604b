package mock

import "github.com/askcdp/cdpdoc"

var _ cdpdoc.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of cdpdoc.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(text string) []string
}

func (t *Tokenizer) Tokenize(text string) []string {
	return t.TokenizeFn(text)
}
