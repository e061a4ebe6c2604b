package mock

import (
	"context"

	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of cdpdoc.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, query cdpdoc.Query, opts cdpdoc.RetrieveOptions) ([]cdpdoc.Match, error)
}

func (r *Retriever) Retrieve(ctx context.Context, query cdpdoc.Query, opts cdpdoc.RetrieveOptions) ([]cdpdoc.Match, error) {
	return r.RetrieveFn(ctx, query, opts)
}
