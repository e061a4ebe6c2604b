package main

import (
	"fmt"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/tfidf"
	"github.com/askcdp/cdpdoc/token"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, cdpdoc.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no documents to index. Run 'cdpdoc scrape' first.\n")
		return cdpdoc.Errorf(cdpdoc.ENOTFOUND, "no documents to index")
	}

	idx, err := tfidf.Build(docs, token.NewTokenizer())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	if err := deps.IndexStore.Save(deps.Ctx, idx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents (%d terms) to %s\n",
		len(idx.Entries), len(idx.Vocabulary), deps.IndexStore.Path())
	return nil
}
