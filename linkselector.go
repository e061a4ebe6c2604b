package cdpdoc

// LinkPriority represents scrape priority (higher = more important).
type LinkPriority int

// Link priority levels for scrape ordering.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFallback   LinkPriority = 10
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PriorityTOC        LinkPriority = 110
)

// DiscoveredLink represents a URL with priority metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "nav", "sidebar", "content", "footer"
}

// LinkSelector extracts prioritized links from HTML.
// Each platform's documentation site has its own navigation structure, so
// selectors are registered per platform with a generic fallback.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns discovered links with priority.
	// The baseURL is used to resolve relative URLs.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)

	// Name returns the selector's identifier (e.g., "segment", "generic").
	Name() string
}

// LinkSelectorRegistry manages platform-specific selectors.
type LinkSelectorRegistry interface {
	// Get returns the selector for a platform, or the generic fallback
	// if no platform-specific selector is registered.
	Get(platform Platform) LinkSelector

	// Register adds a selector for a platform.
	Register(platform Platform, selector LinkSelector)

	// List returns all platforms with registered selectors.
	List() []Platform
}
