package mock

import (
	"context"

	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of cdpdoc.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, message string) (*cdpdoc.Response, error)
}

func (a *Answerer) Answer(ctx context.Context, message string) (*cdpdoc.Response, error) {
	return a.AnswerFn(ctx, message)
}
