// Package scrape orchestrates documentation scraping for the supported
// platforms. It coordinates sitemap discovery, fetching, extraction,
// conversion and storage of documentation pages.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/askcdp/cdpdoc"
	"golang.org/x/sync/errgroup"
)

// Source describes where a platform's documentation lives.
type Source struct {
	// URL is the documentation root, used for sitemap discovery and as
	// the seed for recursive walking.
	URL string

	// Filter restricts scraping to documentation URLs. Nil allows all.
	Filter *cdpdoc.URLFilter
}

// DefaultSources returns the documentation roots for all supported
// platforms.
func DefaultSources() map[cdpdoc.Platform]Source {
	return map[cdpdoc.Platform]Source{
		cdpdoc.PlatformSegment:   {URL: "https://segment.com/docs/"},
		cdpdoc.PlatformMParticle: {URL: "https://docs.mparticle.com/"},
		cdpdoc.PlatformLytics:    {URL: "https://docs.lytics.com/"},
		cdpdoc.PlatformZeotap:    {URL: "https://docs.zeotap.com/"},
	}
}

// Scraper orchestrates the scraping of documentation sites.
type Scraper struct {
	Sitemaps      cdpdoc.SitemapService
	Fetcher       cdpdoc.Fetcher
	Extractor     cdpdoc.Extractor
	Converter     cdpdoc.Converter
	Documents     cdpdoc.DocumentService
	LinkSelectors cdpdoc.LinkSelectorRegistry
	RateLimiter   cdpdoc.DomainLimiter
	Concurrency   int
	RetryDelays   []time.Duration

	// MaxPages caps the number of pages scraped per platform.
	// Zero means DefaultMaxPages.
	MaxPages int
}

// Scrape limits.
const (
	DefaultMaxPages    = 1000
	defaultConcurrency = 10

	// Bloom filter sizing for the recursive walk frontier.
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Result holds the outcome of scraping one platform.
type Result struct {
	Platform cdpdoc.Platform
	Saved    int
	Failed   int
	Bytes    int
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Platform  cdpdoc.Platform
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
// It may be called from multiple goroutines.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	title    string
	markdown string
	err      error
}

// ScrapeAll scrapes every platform in sources concurrently. Results are
// keyed by platform. The first platform error cancels the rest.
func (s *Scraper) ScrapeAll(ctx context.Context, sources map[cdpdoc.Platform]Source, progress ProgressFunc) (map[cdpdoc.Platform]*Result, error) {
	var mu sync.Mutex
	results := make(map[cdpdoc.Platform]*Result, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for _, platform := range cdpdoc.Platforms() {
		source, ok := sources[platform]
		if !ok {
			continue
		}
		g.Go(func() error {
			result, err := s.ScrapePlatform(gctx, platform, source, progress)
			if err != nil {
				return fmt.Errorf("%s: %w", platform, err)
			}
			mu.Lock()
			results[platform] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ScrapePlatform scrapes one platform's documentation and replaces its
// documents in the store. URLs come from the sitemap when one exists;
// otherwise the scraper walks links recursively from the source URL.
func (s *Scraper) ScrapePlatform(ctx context.Context, platform cdpdoc.Platform, source Source, progress ProgressFunc) (*Result, error) {
	if !platform.Valid() {
		return nil, cdpdoc.Errorf(cdpdoc.EINVALID, "platform %q not supported", platform)
	}

	urls, err := s.Sitemaps.DiscoverURLs(ctx, source.URL, source.Filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// Old documents go away before the new scrape lands so positions
	// stay dense and stale pages disappear.
	if err := s.Documents.DeleteDocumentsByPlatform(ctx, platform); err != nil {
		return nil, fmt.Errorf("delete documents: %w", err)
	}

	if len(urls) == 0 {
		if s.LinkSelectors != nil && s.RateLimiter != nil {
			return s.recursiveScrape(ctx, platform, source, progress)
		}
		return &Result{Platform: platform}, nil
	}

	if max := s.maxPages(); len(urls) > max {
		urls = urls[:max]
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Platform: platform, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			g.Go(func() error {
				resultCh <- s.processURL(gctx, i, pageURL)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in position order.
	results := make([]pageResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			if result.err != nil {
				failedCount++
			}
			continue
		}
		event := ProgressEvent{
			Platform:  platform,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
		}
		if result.err != nil {
			failedCount++
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	var savedCount, totalBytes int
	for _, result := range results {
		if result.err != nil {
			continue
		}

		doc := &cdpdoc.Document{
			Platform:  platform,
			SourceURL: result.url,
			Title:     result.title,
			Content:   result.markdown,
			Position:  result.position,
		}
		if err := s.Documents.CreateDocument(ctx, doc); err != nil {
			failedCount++
			continue
		}

		savedCount++
		totalBytes += len(result.markdown)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Platform: platform, Completed: total, Total: total})
	}

	return &Result{
		Platform: platform,
		Saved:    savedCount,
		Failed:   failedCount,
		Bytes:    totalBytes,
	}, nil
}

// processURL fetches and processes a single URL.
func (s *Scraper) processURL(ctx context.Context, position int, pageURL string) pageResult {
	result := pageResult{position: position, url: pageURL}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	result.markdown = markdown
	return result
}

// recursiveScrape walks links from the source URL when no sitemap exists.
// It stays on the source host within the source path prefix. Pages are
// processed sequentially to keep rate limiting simple.
func (s *Scraper) recursiveScrape(ctx context.Context, platform cdpdoc.Platform, source Source, progress ProgressFunc) (*Result, error) {
	sourceURL, err := url.Parse(source.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}
	pathPrefix := sourceURL.Path

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(cdpdoc.DiscoveredLink{
		URL:      source.URL,
		Priority: cdpdoc.PriorityNavigation,
	})

	selector := s.LinkSelectors.Get(platform)

	result := Result{Platform: platform}
	position := 0
	processedCount := 0
	max := s.maxPages()

	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if processedCount >= max {
			break
		}
		processedCount++

		if ctx.Err() != nil {
			break
		}

		linkURL, err := url.Parse(link.URL)
		if err != nil {
			result.Failed++
			continue
		}
		if err := s.RateLimiter.Wait(ctx, linkURL.Host); err != nil {
			break // context canceled
		}

		delays := s.RetryDelays
		if delays == nil {
			delays = DefaultRetryDelays()
		}
		html, err := FetchWithRetryDelays(ctx, link.URL, s.Fetcher.Fetch, nil, delays)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Platform: platform, URL: link.URL, Error: err})
			}
			continue
		}

		// Queue in-scope links before processing the page.
		if links, err := selector.ExtractLinks(html, link.URL); err == nil {
			for _, discovered := range links {
				discoveredURL, err := url.Parse(discovered.URL)
				if err != nil {
					continue
				}
				if discoveredURL.Host != sourceURL.Host {
					continue
				}
				if !strings.HasPrefix(discoveredURL.Path, pathPrefix) {
					continue
				}
				if !source.Filter.Match(discovered.URL) {
					continue
				}
				frontier.Push(discovered)
			}
		}

		extracted, err := s.Extractor.Extract(html)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Platform: platform, URL: link.URL, Error: err})
			}
			continue
		}

		markdown, err := s.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Platform: platform, URL: link.URL, Error: err})
			}
			continue
		}

		doc := &cdpdoc.Document{
			Platform:  platform,
			SourceURL: link.URL,
			Title:     extracted.Title,
			Content:   markdown,
			Position:  position,
		}
		position++

		if err := s.Documents.CreateDocument(ctx, doc); err != nil {
			result.Failed++
			continue
		}

		result.Saved++
		result.Bytes += len(markdown)

		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Platform: platform, URL: link.URL})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Platform: platform})
	}

	return &result, nil
}

func (s *Scraper) maxPages() int {
	if s.MaxPages > 0 {
		return s.MaxPages
	}
	return DefaultMaxPages
}
