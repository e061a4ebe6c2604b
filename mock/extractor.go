package mock

import "github.com/askcdp/cdpdoc"

var _ cdpdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cdpdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*cdpdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*cdpdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
