package tfidf

import (
	"context"
	"sort"

	"github.com/askcdp/cdpdoc"
)

// Ensure Retriever implements cdpdoc.Retriever at compile time.
var _ cdpdoc.Retriever = (*Retriever)(nil)

// Retriever ranks documents by cosine similarity against an immutable
// index. Safe for concurrent use.
type Retriever struct {
	index *Index
}

// NewRetriever creates a Retriever over a built index.
func NewRetriever(index *Index) *Retriever {
	return &Retriever{index: index}
}

// Retrieve implements cdpdoc.Retriever. Matches are ordered by descending
// score; equal scores keep corpus order. Scores at or below the threshold
// are dropped, so an empty result means no confident match.
func (r *Retriever) Retrieve(ctx context.Context, query cdpdoc.Query, opts cdpdoc.RetrieveOptions) ([]cdpdoc.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	vec, norm := r.index.Embed(query.Tokens)
	if norm == 0 {
		return []cdpdoc.Match{}, nil
	}

	matches := make([]cdpdoc.Match, 0, opts.TopK)
	for i := range r.index.Entries {
		entry := &r.index.Entries[i]
		if opts.Platform != "" && entry.Document.Platform != opts.Platform {
			continue
		}
		score := cosine(vec, norm, entry.Vector, entry.Norm)
		if score <= opts.MinScore {
			continue
		}
		matches = append(matches, cdpdoc.Match{Document: entry.Document, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > opts.TopK {
		matches = matches[:opts.TopK]
	}
	return matches, nil
}

func cosine(qvec map[int]float64, qnorm float64, dvec map[int]float64, dnorm float64) float64 {
	if qnorm == 0 || dnorm == 0 {
		return 0
	}
	var dot float64
	for id, w := range qvec {
		dot += w * dvec[id]
	}
	return dot / (qnorm * dnorm)
}
