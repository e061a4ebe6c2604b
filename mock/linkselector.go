package mock

import "github.com/askcdp/cdpdoc"

var _ cdpdoc.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of cdpdoc.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]cdpdoc.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	return s.NameFn()
}

var _ cdpdoc.LinkSelectorRegistry = (*LinkSelectorRegistry)(nil)

// LinkSelectorRegistry is a mock implementation of cdpdoc.LinkSelectorRegistry.
type LinkSelectorRegistry struct {
	GetFn      func(platform cdpdoc.Platform) cdpdoc.LinkSelector
	RegisterFn func(platform cdpdoc.Platform, selector cdpdoc.LinkSelector)
	ListFn     func() []cdpdoc.Platform
}

func (r *LinkSelectorRegistry) Get(platform cdpdoc.Platform) cdpdoc.LinkSelector {
	return r.GetFn(platform)
}

func (r *LinkSelectorRegistry) Register(platform cdpdoc.Platform, selector cdpdoc.LinkSelector) {
	r.RegisterFn(platform, selector)
}

func (r *LinkSelectorRegistry) List() []cdpdoc.Platform {
	return r.ListFn()
}
