package cdpdoc

// Tokenizer normalizes text into index terms. Implementations case-fold,
// drop stopwords and punctuation, and stem the remaining words.
//
// Tokenization must be deterministic: the same text always yields the same
// token list. The index and the query pipeline share one Tokenizer so that
// query terms land in the same vector space as document terms.
type Tokenizer interface {
	Tokenize(text string) []string
}
