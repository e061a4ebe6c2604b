package mock

import (
	"context"

	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of cdpdoc.URLFrontier.
type URLFrontier struct {
	PushFn func(link cdpdoc.DiscoveredLink) bool
	PopFn  func() (cdpdoc.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link cdpdoc.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (cdpdoc.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ cdpdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of cdpdoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
