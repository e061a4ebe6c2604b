package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/fs"
	"github.com/askcdp/cdpdoc/scrape"
	"github.com/askcdp/cdpdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB         *sqlite.DB
	Documents  cdpdoc.DocumentService
	Sitemaps   cdpdoc.SitemapService
	IndexStore *fs.IndexStore

	// Scraper is wired for the scrape command. Its Fetcher is chosen by
	// ScrapeCmd.Run based on the render mode.
	Scraper *scrape.Scraper

	// Fetcher is the plain HTTP fetcher used when no rendering is needed.
	Fetcher cdpdoc.Fetcher

	// RenderFetcher lazily launches a headless browser fetcher. It is a
	// factory so the browser only starts when the render mode requires it.
	RenderFetcher func() (cdpdoc.Fetcher, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape platform documentation into the local database"`
	Index  IndexCmd  `cmd:"" help:"Build the retrieval index from scraped documents"`
	Ask    AskCmd    `cmd:"" help:"Ask a one-shot question about the documentation"`
	Serve  ServeCmd  `cmd:"" help:"Start the chat HTTP server"`
	Docs   DocsCmd   `cmd:"" help:"List scraped documents and index stats"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Platform    string `arg:"" optional:"" help:"Platform to scrape (segment, mparticle, lytics, zeotap). Default: all"`
	Render      string `default:"auto" enum:"auto,never,always" help:"Headless browser rendering: auto probes, never uses plain HTTP, always renders"`
	Extractor   string `default:"trafilatura" enum:"trafilatura,readability" help:"Content extraction backend"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int    `default:"1000" help:"Maximum pages per platform"`
	Verbose     bool   `short:"v" help:"Log fetch and sitemap activity"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string  `arg:"" help:"Question to ask about the documentation"`
	Strategy string  `default:"tfidf" enum:"tfidf,keyword" help:"Retrieval strategy"`
	TopK     int     `default:"3" help:"Number of passages to retrieve"`
	MinScore float64 `default:"0.1" help:"Minimum similarity score"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string  `default:":8080" help:"Listen address"`
	Strategy string  `default:"tfidf" enum:"tfidf,keyword" help:"Retrieval strategy"`
	TopK     int     `default:"3" help:"Number of passages to retrieve"`
	MinScore float64 `default:"0.1" help:"Minimum similarity score"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Platform string `arg:"" optional:"" help:"Platform to list (default: all)"`
	Full     bool   `help:"Show full document content"`
}
