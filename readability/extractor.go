package readability

import (
	"strings"

	"github.com/askcdp/cdpdoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements cdpdoc.Extractor at compile time.
var _ cdpdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*cdpdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &cdpdoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
