package main

import (
	"fmt"

	"github.com/askcdp/cdpdoc"
	"github.com/askcdp/cdpdoc/chat"
	"github.com/askcdp/cdpdoc/keyword"
	cdpdocslog "github.com/askcdp/cdpdoc/slog"
	"github.com/askcdp/cdpdoc/tfidf"
	"github.com/askcdp/cdpdoc/token"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	engine, err := buildEngine(deps, c.Strategy, c.TopK, c.MinScore)
	if err != nil {
		return err
	}

	resp, err := engine.Answer(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, resp.Content)
	return nil
}

// buildEngine wires the chat engine with the configured retrieval strategy.
// The tfidf strategy fails fast when the index is missing or stale relative
// to the document corpus.
func buildEngine(deps *Dependencies, strategy string, topK int, minScore float64) (*chat.Engine, error) {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, cdpdoc.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return nil, err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no documents found. Run 'cdpdoc scrape' first.\n")
		return nil, cdpdoc.Errorf(cdpdoc.ENOTFOUND, "no documents found")
	}

	tokenizer := token.NewTokenizer()

	var retriever cdpdoc.Retriever
	switch strategy {
	case "keyword":
		retriever, err = keyword.NewRetriever(docs, tokenizer)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			return nil, err
		}
	default:
		idx, err := deps.IndexStore.LoadCurrent(deps.Ctx, docs)
		if err != nil {
			switch cdpdoc.ErrorCode(err) {
			case cdpdoc.ENOTFOUND:
				fmt.Fprintf(deps.Stderr, "error: index not found at %s. Run 'cdpdoc index' first.\n", deps.IndexStore.Path())
			case cdpdoc.EUNAVAILABLE:
				fmt.Fprintf(deps.Stderr, "error: index is stale. Run 'cdpdoc index' to rebuild it.\n")
			default:
				fmt.Fprintf(deps.Stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
			}
			return nil, err
		}
		retriever = tfidf.NewRetriever(idx)
	}

	understander := cdpdoc.NewUnderstander(tokenizer)

	engine := chat.NewEngine(understander, cdpdocslog.NewLoggingRetriever(retriever, deps.Logger))
	if topK > 0 {
		engine.TopK = topK
	}
	if minScore > 0 {
		engine.MinScore = minScore
	}

	return engine, nil
}
