package main

import (
	"fmt"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/tfidf"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	filter := cdpdoc.DocumentFilter{}
	if c.Platform != "" {
		platform, err := cdpdoc.ParsePlatform(c.Platform)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return err
		}
		filter.Platform = &platform
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no documents found. Run 'cdpdoc scrape' first.\n")
		return cdpdoc.Errorf(cdpdoc.ENOTFOUND, "no documents found")
	}

	if c.Full {
		for _, doc := range docs {
			fmt.Fprintf(deps.Stdout, "# %s (%s)\n\n%s\n\n", doc.Title, doc.SourceURL, doc.Content)
		}
		return nil
	}

	// Per-platform counts followed by the listing
	counts := make(map[cdpdoc.Platform]int)
	for _, doc := range docs {
		counts[doc.Platform]++
	}

	fmt.Fprintf(deps.Stdout, "Documents (%d total):\n", len(docs))
	for _, platform := range cdpdoc.Platforms() {
		if n := counts[platform]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %s: %d\n", platform, n)
		}
	}
	fmt.Fprintln(deps.Stdout)

	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. [%s] %s\n     %s\n", i+1, doc.Platform, title, doc.SourceURL)
	}

	// Index stats, when an index exists
	idx, err := deps.IndexStore.Load(deps.Ctx)
	if err != nil {
		if cdpdoc.ErrorCode(err) == cdpdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stdout, "\nNo index built. Run 'cdpdoc index' to build one.\n")
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nIndex: %d documents, %d terms, built %s",
		len(idx.Entries), len(idx.Vocabulary), idx.BuiltAt.Format("2006-01-02 15:04:05"))

	// Staleness is relative to the full corpus, not the filtered listing
	if c.Platform == "" {
		if tfidf.CorpusHash(docs) != idx.CorpusHash {
			fmt.Fprintf(deps.Stdout, " (stale, run 'cdpdoc index' to rebuild)")
		}
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
