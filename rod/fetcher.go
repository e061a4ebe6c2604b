package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/askcdp/cdpdoc"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements cdpdoc.Fetcher at compile time.
var _ cdpdoc.Fetcher = (*Fetcher)(nil)

// serializeScript renders the DOM to HTML with shadow roots inlined.
// Documentation sites built on Web Components keep their navigation links
// inside shadow DOM, which page.HTML() would otherwise omit.
const serializeScript = `() => {
	const render = (node) => {
		if (node.nodeType === Node.TEXT_NODE) return node.textContent;
		if (node.nodeType !== Node.ELEMENT_NODE) return "";
		let out = "<" + node.localName;
		for (const attr of node.attributes) {
			out += " " + attr.name + '="' + attr.value.replace(/"/g, "&quot;") + '"';
		}
		out += ">";
		if (node.shadowRoot) {
			for (const child of node.shadowRoot.childNodes) out += render(child);
		}
		for (const child of node.childNodes) out += render(child);
		return out + "</" + node.localName + ">";
	};
	return "<!DOCTYPE html>" + render(document.documentElement);
}`

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The underlying browser is recycled periodically during long crawls.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout bounds how long a single Fetch may take. Zero means no
// per-fetch timeout beyond the caller's context.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{manager: manager}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML, including content
// inside shadow roots.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", cdpdoc.Errorf(cdpdoc.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	result, err := page.Eval(serializeScript)
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()

	return result.Value.Str(), nil
}

// Close releases browser resources and kills the launched Chrome process.
// Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
