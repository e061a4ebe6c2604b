package cdpdoc

import (
	"fmt"
	"strings"
)

// Fallback messages. The off-topic and no-match wordings are deliberately
// distinct so users can tell whether their question was out of scope or
// simply unanswered by the corpus.
const (
	FallbackOffTopic = "I'm sorry, but your question doesn't seem to be related to the CDP platforms I support. " +
		"I can answer questions about Segment, mParticle, Lytics, and Zeotap."
	FallbackNoMatch = "I couldn't find information related to your question. " +
		"Could you try rephrasing or asking a different question about one of the CDP platforms?"
	FallbackNoComparison = "I couldn't find enough information to compare the platforms based on your question. " +
		"Could you try asking a more specific comparison question?"
)

// Content truncation limits, in characters.
const (
	summaryLimit    = 800
	additionalLimit = 300
)

// ComposeHowTo renders a how-to answer from ranked matches: the top
// document's steps as a markdown ordered list with a source attribution
// line, plus a truncated excerpt of the runner-up when one exists.
func ComposeHowTo(matches []Match) string {
	if len(matches) == 0 {
		return FallbackNoMatch
	}

	doc := matches[0].Document
	var b strings.Builder

	steps := ExtractSteps(doc.Content)
	if len(steps) >= 2 {
		fmt.Fprintf(&b, "Here's how to do that in %s:\n\n", doc.Platform.DisplayName())
		for i, step := range steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	} else {
		fmt.Fprintf(&b, "Here's information on how to do that in %s:\n\n", doc.Platform.DisplayName())
		b.WriteString(Truncate(doc.Content, summaryLimit))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatSource(doc))
	appendAdditional(&b, matches)

	return b.String()
}

// ComposeGeneral renders a general answer: the top document's summary
// paragraph with a source attribution line.
func ComposeGeneral(matches []Match) string {
	if len(matches) == 0 {
		return FallbackNoMatch
	}

	doc := matches[0].Document
	var b strings.Builder

	fmt.Fprintf(&b, "Here's information about that from %s:\n\n", doc.Platform.DisplayName())
	b.WriteString(Summarize(doc.Content, summaryLimit))
	b.WriteString("\n\n")
	b.WriteString(formatSource(doc))
	appendAdditional(&b, matches)

	return b.String()
}

// ComposeComparison renders two labeled platform sections in order of first
// mention, followed by a one-line contrast statement. A platform with no
// matches gets an explicit "nothing found" section so the structure stays
// symmetric.
func ComposeComparison(first, second Platform, firstMatches, secondMatches []Match) string {
	if len(firstMatches) == 0 && len(secondMatches) == 0 {
		return FallbackNoComparison
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's a comparison between %s and %s:\n\n", first.DisplayName(), second.DisplayName())

	writeSection := func(p Platform, matches []Match) {
		fmt.Fprintf(&b, "**%s**:\n", p.DisplayName())
		if len(matches) == 0 {
			b.WriteString("I couldn't find specific information about this platform for your question.\n\n")
			return
		}
		doc := matches[0].Document
		b.WriteString(Summarize(doc.Content, additionalLimit))
		b.WriteString("\n\n")
		b.WriteString(formatSource(doc))
		b.WriteString("\n\n")
	}

	writeSection(first, firstMatches)
	writeSection(second, secondMatches)

	fmt.Fprintf(&b, "**Summary**: %s and %s take different approaches here; weigh the sections above against your integration and data requirements.",
		first.DisplayName(), second.DisplayName())

	return b.String()
}

// Summarize returns the leading paragraphs of a markdown passage, skipping
// headings, truncated to limit characters on a word boundary.
func Summarize(markdown string, limit int) string {
	cleaned := codeBlockRe.ReplaceAllString(markdown, "")
	cleaned = headingLineRe.ReplaceAllString(cleaned, "")

	var paragraphs []string
	for _, p := range strings.Split(cleaned, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	return Truncate(strings.Join(paragraphs, "\n\n"), limit)
}

// Truncate shortens text to at most limit characters, cutting on a word
// boundary and appending an ellipsis when anything was removed.
func Truncate(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}

	cut := text[:limit]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " \n") + "..."
}

func formatSource(doc *Document) string {
	title := doc.Title
	if title == "" {
		title = "Documentation"
	}
	if doc.SourceURL == "" {
		return fmt.Sprintf("Source: %s documentation", doc.Platform.DisplayName())
	}
	return fmt.Sprintf("Source: %s - [%s](%s)", doc.Platform.DisplayName(), title, doc.SourceURL)
}

func appendAdditional(b *strings.Builder, matches []Match) {
	if len(matches) < 2 {
		return
	}
	doc := matches[1].Document
	b.WriteString("\n\nI found some additional information that might be helpful:\n\n")
	b.WriteString("**Additional Information**:\n")
	b.WriteString(Summarize(doc.Content, additionalLimit))
	b.WriteString("\n\n")
	b.WriteString(formatSource(doc))
}
