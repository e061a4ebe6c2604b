package goquery

import (
	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.LinkSelector = (*LyticsSelector)(nil)

// LyticsSelector extracts links from the Lytics documentation site
// (docs.lytics.com). The site is Hugo-based.
//
// It targets Lytics-specific navigation elements:
// - .docs-sidebar for the left sidebar
// - #TableOfContents for the Hugo-generated on-page TOC
type LyticsSelector struct{}

// NewLyticsSelector creates a new LyticsSelector.
func NewLyticsSelector() *LyticsSelector {
	return &LyticsSelector{}
}

// Name returns the selector's identifier.
func (s *LyticsSelector) Name() string {
	return "lytics"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *LyticsSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		// Hugo renders the page TOC under #TableOfContents (PriorityTOC = 110)
		{Selector: "#TableOfContents a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		{Selector: ".toc a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		// Sidebar navigation (PriorityNavigation = 100)
		{Selector: ".docs-sidebar a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: ".sidebar a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: "nav.navbar a[href]", Priority: cdpdoc.PriorityNavigation, Source: "navbar"},
		// Content links (PriorityContent = 50)
		{Selector: ".docs-content a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "article a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		// Footer (PriorityFooter = 20)
		{Selector: "footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
