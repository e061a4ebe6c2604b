package cdpdoc

import (
	"regexp"
	"strings"
)

var (
	numberedStepRe = regexp.MustCompile(`(?m)^\s*\d+[.)]\s+(.+)$`)
	bulletStepRe   = regexp.MustCompile(`(?m)^\s*[-*•]\s+(.+)$`)
	codeBlockRe    = regexp.MustCompile("(?s)```.*?```")
	headingLineRe  = regexp.MustCompile(`(?m)^#{1,6}\s+.*$`)
)

// minSentenceLen filters out fragments when falling back to sentence
// splitting; shorter sentences are rarely actionable instructions.
const minSentenceLen = 20

// ExtractSteps pulls an ordered list of instructions out of a markdown
// passage. It prefers explicit numbered steps, then bullet lists, and
// finally falls back to splitting prose into sentences. Code blocks and
// headings are ignored.
func ExtractSteps(markdown string) []string {
	cleaned := codeBlockRe.ReplaceAllString(markdown, "")
	cleaned = headingLineRe.ReplaceAllString(cleaned, "")

	if steps := matchSteps(numberedStepRe, cleaned); len(steps) >= 2 {
		return steps
	}
	if steps := matchSteps(bulletStepRe, cleaned); len(steps) >= 2 {
		return steps
	}

	var steps []string
	for _, sentence := range splitSentences(cleaned) {
		if len(sentence) > minSentenceLen {
			steps = append(steps, sentence)
		}
	}
	return steps
}

func matchSteps(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	steps := make([]string, 0, len(matches))
	for _, m := range matches {
		if step := strings.TrimSpace(m[1]); step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

// splitSentences breaks prose at sentence-final punctuation followed by
// whitespace. Go's regexp has no lookbehind, so this is a manual scan that
// keeps the punctuation attached to its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	runes := []rune(strings.Join(strings.Fields(text), " "))
	for i, r := range runes {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 == len(runes) || runes[i+1] == ' ' {
				flush()
			}
		}
	}
	flush()

	return sentences
}
