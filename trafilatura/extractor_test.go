package trafilatura_test

import (
	"testing"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements cdpdoc.Extractor at compile time.
var _ cdpdoc.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Track Spec - Segment Documentation</title>
<meta property="og:title" content="Track Spec">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Track</h1>
<p>The Track call records any actions your users perform along with properties describing the action.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Web SDK</title></head>
<body>
<nav><a href="/">Home</a><a href="/developers">Developers</a></nav>
<article>
<h1>Initialize the SDK</h1>
<p>Initialize the SDK with your API key before sending any events to the platform.</p>
<pre><code>mParticle.init("YOUR_API_KEY", config)</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2026</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Initialize the SDK with your API key")
		assert.Contains(t, result.ContentHTML, "mParticle.init")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Audiences</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/docs/audiences/">Audiences</a></li>
<li><a href="/docs/segmentation/">Segmentation</a></li>
</ul>
</nav>
<main>
<h1>Building Audiences</h1>
<p>Audiences are built from behavioral scoring and profile attributes collected across channels.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "behavioral scoring and profile attributes")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Identity Resolution</title></head>
<body>
<article>
<h1>Identity Resolution</h1>
<p>Identity resolution merges user records across devices into a single unified profile.</p>
</article>
<footer>
<p>Copyright 2026 Zeotap GmbH</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "single unified profile")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026 Zeotap GmbH")
	})

	t.Run("handles sidebar-heavy documentation layout", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Destinations Catalog | Segment</title>
<meta property="og:title" content="Destinations Catalog">
</head>
<body>
<nav class="navbar">
<a href="/">Segment</a>
<a href="/docs/">Docs</a>
<a href="/blog">Blog</a>
</nav>
<div class="sidebar">
<ul>
<li><a href="/docs/connections/sources/">Sources</a></li>
<li><a href="/docs/connections/destinations/">Destinations</a></li>
</ul>
</div>
<main class="docMainContainer">
<article>
<h1>Destinations</h1>
<p>Destinations are the business tools and apps that receive data forwarded from your sources.</p>
<h2>Connecting a destination</h2>
<p>Before you begin, make sure at least one source is sending events.</p>
</article>
</main>
<footer class="footer">
<p>Segment Documentation</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "business tools and apps that receive data")
		assert.Contains(t, result.ContentHTML, "Connecting a destination")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Track Events</title></head>
<body>
<article>
<h1>Track Events</h1>
<p>Call track with an event name and properties:</p>
<pre><code class="language-js">analytics.track("Order Completed", {
  revenue: 42.0,
  currency: "USD"
})
</code></pre>
<p>And here is inline code: <code>analytics.identify(userId)</code></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "analytics.track")
		assert.Contains(t, result.ContentHTML, "Order Completed")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
