package cdpdoc_test

import (
	"strings"
	"testing"

	"github.com/askcdp/cdpdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentDoc() *cdpdoc.Document {
	return &cdpdoc.Document{
		ID:        "doc-1",
		Platform:  cdpdoc.PlatformSegment,
		Title:     "Add a Source",
		SourceURL: "https://segment.com/docs/connections/sources/",
		Content:   "1. Open your workspace and click Connections.\n2. Click Add Source and pick a catalog entry.\n3. Follow the setup flow and copy the write key.",
	}
}

func lyticsDoc() *cdpdoc.Document {
	return &cdpdoc.Document{
		ID:        "doc-2",
		Platform:  cdpdoc.PlatformLytics,
		Title:     "Audience Builder",
		SourceURL: "https://docs.lytics.com/audiences/",
		Content:   "Audiences in Lytics are built from behavioral scoring. The audience builder evaluates user fields and behavior in real time.",
	}
}

func TestComposeHowTo(t *testing.T) {
	t.Parallel()

	t.Run("renders numbered steps with source line", func(t *testing.T) {
		t.Parallel()

		got := cdpdoc.ComposeHowTo([]cdpdoc.Match{{Document: segmentDoc(), Score: 0.8}})

		assert.Contains(t, got, "Here's how to do that in Segment:")
		assert.Contains(t, got, "1. Open your workspace and click Connections.")
		assert.Contains(t, got, "2. Click Add Source and pick a catalog entry.")
		assert.Contains(t, got, "Source: Segment - [Add a Source](https://segment.com/docs/connections/sources/)")
	})

	t.Run("falls back to excerpt when no step list found", func(t *testing.T) {
		t.Parallel()

		doc := lyticsDoc()
		doc.Content = "One short remark."

		got := cdpdoc.ComposeHowTo([]cdpdoc.Match{{Document: doc, Score: 0.5}})

		assert.Contains(t, got, "Here's information on how to do that in Lytics:")
		assert.Contains(t, got, "One short remark.")
	})

	t.Run("appends additional information from second match", func(t *testing.T) {
		t.Parallel()

		got := cdpdoc.ComposeHowTo([]cdpdoc.Match{
			{Document: segmentDoc(), Score: 0.8},
			{Document: lyticsDoc(), Score: 0.4},
		})

		assert.Contains(t, got, "**Additional Information**:")
		assert.Contains(t, got, "Audiences in Lytics are built from behavioral scoring.")
	})

	t.Run("no matches yields the no-match fallback", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, cdpdoc.FallbackNoMatch, cdpdoc.ComposeHowTo(nil))
	})
}

func TestComposeGeneral(t *testing.T) {
	t.Parallel()

	got := cdpdoc.ComposeGeneral([]cdpdoc.Match{{Document: lyticsDoc(), Score: 0.6}})

	assert.Contains(t, got, "Here's information about that from Lytics:")
	assert.Contains(t, got, "Audiences in Lytics are built from behavioral scoring.")
	assert.Contains(t, got, "Source: Lytics - [Audience Builder](https://docs.lytics.com/audiences/)")
}

func TestComposeComparison(t *testing.T) {
	t.Parallel()

	t.Run("two labeled sections in first-mention order", func(t *testing.T) {
		t.Parallel()

		got := cdpdoc.ComposeComparison(
			cdpdoc.PlatformSegment, cdpdoc.PlatformLytics,
			[]cdpdoc.Match{{Document: segmentDoc(), Score: 0.7}},
			[]cdpdoc.Match{{Document: lyticsDoc(), Score: 0.6}},
		)

		segmentIdx := strings.Index(got, "**Segment**:")
		lyticsIdx := strings.Index(got, "**Lytics**:")
		require.GreaterOrEqual(t, segmentIdx, 0)
		require.GreaterOrEqual(t, lyticsIdx, 0)
		assert.Less(t, segmentIdx, lyticsIdx)
		assert.Contains(t, got, "**Summary**: Segment and Lytics")
	})

	t.Run("platform without matches gets explicit empty section", func(t *testing.T) {
		t.Parallel()

		got := cdpdoc.ComposeComparison(
			cdpdoc.PlatformZeotap, cdpdoc.PlatformSegment,
			nil,
			[]cdpdoc.Match{{Document: segmentDoc(), Score: 0.7}},
		)

		assert.Contains(t, got, "**Zeotap**:\nI couldn't find specific information about this platform for your question.")
		assert.Contains(t, got, "**Segment**:")
	})

	t.Run("no matches at all yields the comparison fallback", func(t *testing.T) {
		t.Parallel()

		got := cdpdoc.ComposeComparison(cdpdoc.PlatformSegment, cdpdoc.PlatformLytics, nil, nil)

		assert.Equal(t, cdpdoc.FallbackNoComparison, got)
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("short text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello world", cdpdoc.Truncate("hello world", 50))
	})

	t.Run("cuts on word boundary with ellipsis", func(t *testing.T) {
		t.Parallel()

		got := cdpdoc.Truncate("alpha beta gamma delta", 12)

		assert.Equal(t, "alpha beta...", got)
		assert.False(t, strings.Contains(got, "gam"))
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	markdown := "# Heading\n\nFirst paragraph of content.\n\n```\ncode block\n```\n\nSecond paragraph."

	got := cdpdoc.Summarize(markdown, 200)

	assert.Contains(t, got, "First paragraph of content.")
	assert.Contains(t, got, "Second paragraph.")
	assert.NotContains(t, got, "# Heading")
	assert.NotContains(t, got, "code block")
}
