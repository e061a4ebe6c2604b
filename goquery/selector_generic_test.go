package goquery_test

import (
	"testing"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericSelector_Name(t *testing.T) {
	t.Parallel()

	s := goquery.NewGenericSelector()
	assert.Equal(t, "generic", s.Name())
}

func TestGenericSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts links from nav with navigation priority", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Docs</title></head>
<body>
<nav>
	<a href="/docs/intro">Introduction</a>
	<a href="/docs/setup">Setup</a>
</nav>
</body>
</html>`

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, "https://example.com/docs/intro", links[0].URL)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
		assert.Equal(t, "Introduction", links[0].Text)
	})

	t.Run("sidebar links get TOC priority", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="sidebar">
	<a href="/docs/a">A</a>
	<a href="/docs/b">B</a>
</div>
</body></html>`

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, cdpdoc.PriorityTOC, links[0].Priority)
		assert.Equal(t, "toc", links[0].Source)
	})

	t.Run("content and footer priorities", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><a href="/docs/guide">Guide</a></main>
<footer><a href="/legal">Legal</a></footer>
</body></html>`

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, cdpdoc.PriorityContent, links[0].Priority)
		assert.Equal(t, cdpdoc.PriorityFooter, links[1].Priority)
	})

	t.Run("deduplicates keeping highest priority", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="/docs/intro">Intro</a></nav>
<main><a href="/docs/intro">the intro</a></main>
</body></html>`

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
	})

	t.Run("filters external links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav>
	<a href="/docs/intro">Internal</a>
	<a href="https://github.com/project">GitHub</a>
	<a href="https://sub.example.com/docs">Subdomain</a>
</nav>
</body></html>`

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/intro", links[0].URL)
	})

	t.Run("skips non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav>
	<a href="javascript:void(0)">JS</a>
	<a href="mailto:docs@example.com">Mail</a>
	<a href="tel:+1234567890">Call</a>
	<a href="/docs/intro">Real</a>
</nav>
</body></html>`

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/intro", links[0].URL)
	})

	t.Run("strips fragments and drops self-referential links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav>
	<a href="/docs/page#section">Section</a>
	<a href="#top">Top</a>
</nav>
</body></html>`

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks(html, "https://example.com/docs/other")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/docs/page", links[0].URL)
	})

	t.Run("handles empty HTML", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewGenericSelector()
		links, err := s.ExtractLinks("", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav><a href="/docs">Docs</a></nav></body></html>`

		s := goquery.NewGenericSelector()
		_, err := s.ExtractLinks(html, "://invalid")

		require.Error(t, err)
		assert.Equal(t, cdpdoc.EINVALID, cdpdoc.ErrorCode(err))
	})
}
