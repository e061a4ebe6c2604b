package goquery

import (
	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.LinkSelector = (*MParticleSelector)(nil)

// MParticleSelector extracts links from the mParticle documentation site
// (docs.mparticle.com).
//
// It targets mParticle-specific navigation elements:
// - .left-nav and .sidenav for the left sidebar
// - .content-toc for the on-page TOC
type MParticleSelector struct{}

// NewMParticleSelector creates a new MParticleSelector.
func NewMParticleSelector() *MParticleSelector {
	return &MParticleSelector{}
}

// Name returns the selector's identifier.
func (s *MParticleSelector) Name() string {
	return "mparticle"
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
func (s *MParticleSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	configs := []SelectorConfig{
		// On-page TOC (PriorityTOC = 110)
		{Selector: ".content-toc a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		{Selector: ".table-of-contents a[href]", Priority: cdpdoc.PriorityTOC, Source: "toc"},
		// Sidebar navigation (PriorityNavigation = 100)
		{Selector: ".left-nav a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: ".sidenav a[href]", Priority: cdpdoc.PriorityNavigation, Source: "sidebar"},
		{Selector: "nav a[href]", Priority: cdpdoc.PriorityNavigation, Source: "nav"},
		// Content links (PriorityContent = 50)
		{Selector: ".main-content a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "main a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		{Selector: "article a[href]", Priority: cdpdoc.PriorityContent, Source: "content"},
		// Footer (PriorityFooter = 20)
		{Selector: "footer a[href]", Priority: cdpdoc.PriorityFooter, Source: "footer"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
