package goquery

import (
	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.LinkSelector = (*ZeotapSelector)(nil)

// ZeotapSelector extracts links from the Zeotap documentation site
// (docs.zeotap.com). The site's markup is less semantic than the other
// platforms, so extraction includes a path-prefix fallback that picks up
// any in-scope anchor the structural selectors miss.
type ZeotapSelector struct{}

// NewZeotapSelector creates a new ZeotapSelector.
func NewZeotapSelector() *ZeotapSelector {
	return &ZeotapSelector{}
}

// Name returns the selector's identifier.
func (s *ZeotapSelector) Name() string {
	return "zeotap"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
// Anchors missed by the structural selectors are included with
// PriorityFallback when they share the base URL's path prefix.
func (s *ZeotapSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		// On-page TOC (PriorityTOC = 110)
		{Selector: ".table-of-contents a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		{Selector: ".toc a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		// Section tree and category navigation (PriorityNavigation = 100)
		{Selector: ".section-tree a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: ".category-list a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: "nav a[href]", Priority: cdpdoc.PriorityNavigation, Source: "nav"},
		// Content links (PriorityContent = 50)
		{Selector: ".article-body a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "article a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		// Footer (PriorityFooter = 20)
		{Selector: "footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigsAndFallback(html, baseURL, configs)
}
