package goquery

import (
	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.LinkSelector = (*GenericSelector)(nil)

// GenericSelector implements link extraction using universal CSS selectors
// that work across any documentation site. It uses common HTML patterns
// and class names to identify navigation, TOC, content, and footer areas.
type GenericSelector struct{}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{}
}

// Name returns the selector's identifier.
func (s *GenericSelector) Name() string {
	return "generic"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
//
// Priority order (highest to lowest):
//   - TOC: .toc, .sidebar, .table-of-contents, aside
//   - Navigation: nav, [role="navigation"], .nav, .menu, .navbar
//   - Content: main, article, .content, .doc-content
//   - Footer: footer, .footer
func (s *GenericSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".toc a[href], .table-of-contents a[href], .sidebar a[href], aside a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		{Selector: "nav a[href], [role=\"navigation\"] a[href], .nav a[href], .menu a[href], .navbar a[href]", Priority: cdpdoc.PriorityNavigation, Source: "nav"},
		{Selector: "main a[href], article a[href], .content a[href], .doc-content a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "footer a[href], .footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
