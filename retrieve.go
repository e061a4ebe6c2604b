package cdpdoc

import "context"

// Retrieval defaults. The similarity threshold follows the value the
// documentation corpus was tuned against; scores at or below it are
// treated as no confident match.
const (
	DefaultTopK     = 3
	DefaultMinScore = 0.1
)

// Match pairs a document with its similarity score in [0,1].
type Match struct {
	Document *Document `json:"document"`
	Score    float64   `json:"score"`
}

// Retriever selects and ranks the best-matching documents for a query.
// Implementations must return matches in descending score order with ties
// broken by corpus position, and must be safe for concurrent use: the
// underlying index is immutable once built.
type Retriever interface {
	// Retrieve ranks documents against the query tokens.
	// Returns an empty slice when no document scores above the threshold;
	// this is a reported condition, not an error.
	Retrieve(ctx context.Context, query Query, opts RetrieveOptions) ([]Match, error)
}

// RetrieveOptions configures a single retrieval.
type RetrieveOptions struct {
	// Platform restricts matching to one platform's documents.
	// Empty means all platforms.
	Platform Platform

	// TopK caps the number of matches. Zero means DefaultTopK.
	TopK int

	// MinScore is the similarity threshold. Zero means DefaultMinScore.
	MinScore float64
}

// Normalize fills in defaults for unset options.
func (o RetrieveOptions) Normalize() RetrieveOptions {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	return o
}
