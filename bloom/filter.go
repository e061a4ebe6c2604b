// Package bloom keeps a compact seen-set of documentation URLs so the
// scraper can skip pages it has already visited without holding every
// URL string in memory.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a probabilistic seen-set for crawl URLs. A Test hit may be a
// false positive (the page is then skipped, losing at most that page);
// a miss is always genuine, so no page is ever fetched twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter sizes a filter for n expected URLs at the given false
// positive rate. A documentation crawl of a few thousand pages at 1%
// costs only a few kilobytes.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether the URL was probably seen before.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
