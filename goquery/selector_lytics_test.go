package goquery_test

import (
	"testing"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLyticsSelector_Name(t *testing.T) {
	t.Parallel()

	s := goquery.NewLyticsSelector()
	assert.Equal(t, "lytics", s.Name())
}

func TestLyticsSelector_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts links from docs-sidebar with navigation priority", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Lytics Docs</title></head>
<body>
<aside class="docs-sidebar">
	<ul>
		<li><a href="/docs/audiences/">Audiences</a></li>
		<li><a href="/docs/segmentation/">Segmentation</a></li>
	</ul>
</aside>
</body>
</html>`

		s := goquery.NewLyticsSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com/")

		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, "https://docs.lytics.com/docs/audiences/", links[0].URL)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
	})

	t.Run("extracts links from TableOfContents with TOC priority", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav id="TableOfContents">
	<ul>
		<li><a href="/docs/audiences/building/">Building Audiences</a></li>
	</ul>
</nav>
<main>
	<a href="/docs/audiences/exporting/">Exporting</a>
</main>
</body></html>`

		s := goquery.NewLyticsSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com/")

		require.NoError(t, err)
		require.Len(t, links, 2)

		assert.Equal(t, cdpdoc.PriorityTOC, links[0].Priority)
		assert.Equal(t, "toc", links[0].Source)
		assert.Equal(t, cdpdoc.PriorityContent, links[1].Priority)
	})

	t.Run("deduplicates keeping highest priority", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<aside class="docs-sidebar">
	<a href="/docs/audiences/">Audiences</a>
</aside>
<main>
	<a href="/docs/audiences/">audiences</a>
</main>
</body></html>`

		s := goquery.NewLyticsSelector()
		links, err := s.ExtractLinks(html, "https://docs.lytics.com/")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, cdpdoc.PriorityNavigation, links[0].Priority)
	})
}
