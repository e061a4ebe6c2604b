package cdpdoc

import "context"

// Answerer runs the full question answering pipeline: understand the
// query, retrieve matching documentation, and compose a markdown response.
//
// Every input, however malformed, yields a well-formed Response; failures
// that reach the caller as errors are internal faults, not bad queries.
type Answerer interface {
	Answer(ctx context.Context, message string) (*Response, error)
}
