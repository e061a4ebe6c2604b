package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/fs"
	"github.com/askcdp/cdpdoc/goquery"
	cdpdochttp "github.com/askcdp/cdpdoc/http"
	"github.com/askcdp/cdpdoc/htmltomarkdown"
	"github.com/askcdp/cdpdoc/readability"
	"github.com/askcdp/cdpdoc/rod"
	"github.com/askcdp/cdpdoc/scrape"
	cdpdocslog "github.com/askcdp/cdpdoc/slog"
	"github.com/askcdp/cdpdoc/sqlite"
	"github.com/askcdp/cdpdoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Index file path. Set before calling Run().
	IndexPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService cdpdoc.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		IndexPath: defaultIndexPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding. The logger is
	// silenced for commands that don't ask for it; serve and verbose
	// scrape switch it to JSON on stderr below.
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cdpdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cdpdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CDPDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Sitemaps = cdpdochttp.NewSitemapService(nil)
	deps.IndexStore = fs.NewIndexStore(m.IndexPath)

	if cmd == "serve" || (cmd == "scrape" && cli.Scrape.Verbose) {
		deps.Logger = slog.New(slog.NewJSONHandler(stderr, nil))
	}

	// Wire scrape-specific dependencies
	if cmd == "scrape" {
		deps.Fetcher = cdpdochttp.NewFetcher()
		deps.RenderFetcher = func() (cdpdoc.Fetcher, error) {
			return rod.NewFetcher()
		}

		var extractor cdpdoc.Extractor = trafilatura.NewExtractor()
		if cli.Scrape.Extractor == "readability" {
			extractor = readability.NewExtractor()
		}

		deps.Scraper = &scrape.Scraper{
			Sitemaps:      cdpdocslog.NewLoggingSitemapService(deps.Sitemaps, deps.Logger),
			Extractor:     extractor,
			Converter:     htmltomarkdown.NewConverter(),
			Documents:     m.DocumentService,
			LinkSelectors: goquery.NewDefaultRegistry(),
			RateLimiter:   scrape.NewDomainLimiter(1.0),
			Concurrency:   cli.Scrape.Concurrency,
			MaxPages:      cli.Scrape.MaxPages,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CDPDOC_DB"); path != "" {
		return path
	}
	return filepath.Join(defaultDataDir(), "cdpdoc.db")
}

func defaultIndexPath() string {
	if path := os.Getenv("CDPDOC_INDEX"); path != "" {
		return path
	}
	return filepath.Join(defaultDataDir(), "index.json")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".cdpdoc")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
