package goquery

import (
	"sort"

	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.LinkSelectorRegistry = (*Registry)(nil)

// Registry manages platform-specific link selectors. Get falls back to a
// generic selector when no platform-specific selector is registered.
type Registry struct {
	fallback  cdpdoc.LinkSelector
	selectors map[cdpdoc.Platform]cdpdoc.LinkSelector
}

// NewRegistry creates a new Registry with the given fallback selector.
func NewRegistry(fallback cdpdoc.LinkSelector) *Registry {
	return &Registry{
		fallback:  fallback,
		selectors: make(map[cdpdoc.Platform]cdpdoc.LinkSelector),
	}
}

// NewDefaultRegistry creates a Registry with all platform selectors
// registered and the generic selector as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewGenericSelector())
	r.Register(cdpdoc.PlatformSegment, NewSegmentSelector())
	r.Register(cdpdoc.PlatformMParticle, NewMParticleSelector())
	r.Register(cdpdoc.PlatformLytics, NewLyticsSelector())
	r.Register(cdpdoc.PlatformZeotap, NewZeotapSelector())
	return r
}

// Get returns the selector for a platform, or the fallback if no
// platform-specific selector is registered.
func (r *Registry) Get(platform cdpdoc.Platform) cdpdoc.LinkSelector {
	if selector, ok := r.selectors[platform]; ok {
		return selector
	}
	return r.fallback
}

// Register adds a selector for a platform.
// If a selector is already registered for the platform, it is replaced.
func (r *Registry) Register(platform cdpdoc.Platform, selector cdpdoc.LinkSelector) {
	r.selectors[platform] = selector
}

// List returns all platforms with registered selectors, sorted.
func (r *Registry) List() []cdpdoc.Platform {
	platforms := make([]cdpdoc.Platform, 0, len(r.selectors))
	for p := range r.selectors {
		platforms = append(platforms, p)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i] < platforms[j] })
	return platforms
}
