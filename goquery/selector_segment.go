package goquery

import (
	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.LinkSelector = (*SegmentSelector)(nil)

// SegmentSelector extracts links from the Segment documentation site
// (segment.com/docs). Validated against the Jekyll-based site layout.
//
// It targets Segment-specific navigation elements:
// - .nav-docs for the left sidebar
// - .page-nav for the on-page TOC
// - .header-nav for the top navigation bar
type SegmentSelector struct{}

// NewSegmentSelector creates a new SegmentSelector.
func NewSegmentSelector() *SegmentSelector {
	return &SegmentSelector{}
}

// Name returns the selector's identifier.
func (s *SegmentSelector) Name() string {
	return "segment"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *SegmentSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		// On-page TOC has highest priority (PriorityTOC = 110)
		{Selector: ".page-nav a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		{Selector: ".table-of-contents a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		// Docs sidebar and header nav (PriorityNavigation = 100)
		{Selector: ".nav-docs a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: ".sidebar a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: ".header-nav a[href]", Priority: cdpdoc.PriorityNavigation, Source: "navbar"},
		// Content links (PriorityContent = 50)
		{Selector: ".markdown a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "article a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		// Footer (PriorityFooter = 20)
		{Selector: "footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
