package mock

import (
	"context"

	"github.com/askcdp/cdpdoc"
)

var _ cdpdoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of cdpdoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *cdpdoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *cdpdoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
