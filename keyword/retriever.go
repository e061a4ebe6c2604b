// Package keyword implements a simple overlap-based retrieval strategy.
// A document's score is the fraction of distinct query tokens that appear
// in it. Coarser than the vector-space strategy, but cheap to build and
// useful as a baseline when comparing ranking behavior.
package keyword

import (
	"context"
	"sort"

	"github.com/askcdp/cdpdoc"
)

// Ensure Retriever implements cdpdoc.Retriever at compile time.
var _ cdpdoc.Retriever = (*Retriever)(nil)

type entry struct {
	document *cdpdoc.Document
	terms    map[string]struct{}
}

// Retriever scores documents by distinct query-token overlap. Immutable
// after construction and safe for concurrent use.
type Retriever struct {
	entries []entry
}

// NewRetriever indexes the corpus term sets. Returns EINVALID for an
// empty corpus.
func NewRetriever(docs []*cdpdoc.Document, tokenizer cdpdoc.Tokenizer) (*Retriever, error) {
	if len(docs) == 0 {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "retriever requires at least one document")
	}

	entries := make([]entry, len(docs))
	for i, doc := range docs {
		tokens := tokenizer.Tokenize(doc.Title + ". " + doc.Content)
		terms := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			terms[tok] = struct{}{}
		}
		entries[i] = entry{document: doc, terms: terms}
	}
	return &Retriever{entries: entries}, nil
}

// Retrieve implements cdpdoc.Retriever. Matches are ordered by descending
// overlap; equal scores keep corpus order.
func (r *Retriever) Retrieve(ctx context.Context, query cdpdoc.Query, opts cdpdoc.RetrieveOptions) ([]cdpdoc.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	distinct := make(map[string]struct{}, len(query.Tokens))
	for _, tok := range query.Tokens {
		distinct[tok] = struct{}{}
	}
	if len(distinct) == 0 {
		return []cdpdoc.Match{}, nil
	}

	matches := make([]cdpdoc.Match, 0, opts.TopK)
	for i := range r.entries {
		e := &r.entries[i]
		if opts.Platform != "" && e.document.Platform != opts.Platform {
			continue
		}

		var hits int
		for tok := range distinct {
			if _, ok := e.terms[tok]; ok {
				hits++
			}
		}
		score := float64(hits) / float64(len(distinct))
		if score <= opts.MinScore {
			continue
		}
		matches = append(matches, cdpdoc.Match{Document: e.document, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > opts.TopK {
		matches = matches[:opts.TopK]
	}
	return matches, nil
}
