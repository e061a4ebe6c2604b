package scrape

import "github.com/askcdp/cdpdoc"

// ContentDiffers compares content extracted from plain-HTTP HTML against
// browser-rendered HTML for the same page. Returns true if the rendered
// content is significantly longer (>50%), suggesting the site needs
// JavaScript rendering. Also returns true on extraction errors.
func ContentDiffers(httpHTML, renderedHTML string, extractor cdpdoc.Extractor) bool {
	httpResult, err := extractor.Extract(httpHTML)
	if err != nil {
		return true
	}

	renderedResult, err := extractor.Extract(renderedHTML)
	if err != nil {
		return true
	}

	httpLen := len(httpResult.ContentHTML)
	renderedLen := len(renderedResult.ContentHTML)

	if httpLen == 0 && renderedLen > 0 {
		return true
	}

	threshold := float64(httpLen) * 1.5
	return float64(renderedLen) > threshold
}
