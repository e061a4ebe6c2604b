package mock

import "github.com/askcdp/cdpdoc"

var _ cdpdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of cdpdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
