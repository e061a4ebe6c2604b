package main

import (
	"fmt"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/scrape"
	cdpdocslog "github.com/askcdp/cdpdoc/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	sources := scrape.DefaultSources()

	// Narrow to a single platform when one is named
	if c.Platform != "" {
		platform, err := cdpdoc.ParsePlatform(c.Platform)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		sources = map[cdpdoc.Platform]scrape.Source{platform: sources[platform]}
	}

	fetcher, cleanup, err := c.chooseFetcher(deps, sources)
	if err != nil {
		return err
	}
	defer cleanup()
	deps.Scraper.Fetcher = cdpdocslog.NewLoggingFetcher(fetcher, deps.Logger)

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "%s: found %d URLs\n", event.Platform, event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", scrape.TruncateURL(event.URL, 60), event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the scrape completes
		}
	}

	results, err := deps.Scraper.ScrapeAll(deps.Ctx, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	for _, platform := range cdpdoc.Platforms() {
		result, ok := results[platform]
		if !ok {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: saved %d pages, %d failed (%s)\n",
			platform, result.Saved, result.Failed, scrape.FormatBytes(result.Bytes))
	}

	fmt.Fprintf(deps.Stdout, "Run 'cdpdoc index' to rebuild the retrieval index.\n")
	return nil
}

// chooseFetcher picks between the plain HTTP fetcher and a headless browser
// based on the render mode. In auto mode it probes the first source's base
// URL with both fetchers and keeps the browser only when the rendered page
// carries content the plain fetch misses.
func (c *ScrapeCmd) chooseFetcher(deps *Dependencies, sources map[cdpdoc.Platform]scrape.Source) (cdpdoc.Fetcher, func(), error) {
	noop := func() {}

	switch c.Render {
	case "never":
		return deps.Fetcher, noop, nil

	case "always":
		rendered, err := deps.RenderFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, noop, fmt.Errorf("failed to start browser: %w", err)
		}
		return rendered, func() { rendered.Close() }, nil
	}

	// Auto: probe one base URL with both fetchers
	var probeURL string
	for _, platform := range cdpdoc.Platforms() {
		if source, ok := sources[platform]; ok {
			probeURL = source.URL
			break
		}
	}
	if probeURL == "" {
		return deps.Fetcher, noop, nil
	}

	rendered, err := deps.RenderFetcher()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "browser unavailable, using plain HTTP: %v\n", err)
		return deps.Fetcher, noop, nil
	}

	httpHTML, err := deps.Fetcher.Fetch(deps.Ctx, probeURL)
	if err != nil {
		// Plain fetch failed outright; the rendered fetcher is the only option
		return rendered, func() { rendered.Close() }, nil
	}

	renderedHTML, err := rendered.Fetch(deps.Ctx, probeURL)
	if err != nil || !scrape.ContentDiffers(httpHTML, renderedHTML, deps.Scraper.Extractor) {
		rendered.Close()
		return deps.Fetcher, noop, nil
	}

	fmt.Fprintf(deps.Stdout, "rendered content differs at %s, using browser\n", scrape.TruncateURL(probeURL, 60))
	return rendered, func() { rendered.Close() }, nil
}
