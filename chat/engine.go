// Package chat wires query understanding, retrieval and response
// composition into the question answering pipeline.
package chat

import (
	"context"

	"github.com/askcdp/cdpdoc"
)

// Ensure Engine implements cdpdoc.Answerer at compile time.
var _ cdpdoc.Answerer = (*Engine)(nil)

// Engine answers questions about the documentation corpus. It holds no
// per-conversation state: every message is answered independently.
type Engine struct {
	understander *cdpdoc.Understander
	retriever    cdpdoc.Retriever

	// TopK and MinScore override the retrieval defaults when set.
	TopK     int
	MinScore float64
}

// NewEngine creates an Engine over an understander and a retriever. The
// understander must share a tokenizer with the retriever's index.
func NewEngine(understander *cdpdoc.Understander, retriever cdpdoc.Retriever) *Engine {
	return &Engine{understander: understander, retriever: retriever}
}

// Answer implements cdpdoc.Answerer. Irrelevant queries are answered with
// the off-topic fallback without touching the retriever. A comparison
// that names fewer than two platforms degrades to a general answer.
func (e *Engine) Answer(ctx context.Context, message string) (*cdpdoc.Response, error) {
	query := e.understander.Understand(message)
	resp := &cdpdoc.Response{Intent: query.Intent, Platforms: query.Platforms}

	if query.Intent == cdpdoc.IntentIrrelevant {
		resp.Content = cdpdoc.FallbackOffTopic
		return resp, nil
	}

	if query.Intent == cdpdoc.IntentComparison {
		if len(query.Platforms) >= 2 {
			content, err := e.answerComparison(ctx, query)
			if err != nil {
				return nil, err
			}
			resp.Content = content
			return resp, nil
		}
		// Not enough platforms to compare.
		query.Intent = cdpdoc.IntentGeneral
		resp.Intent = cdpdoc.IntentGeneral
	}

	matches, err := e.retrieve(ctx, query, e.queryPlatform(query))
	if err != nil {
		return nil, err
	}

	if query.Intent == cdpdoc.IntentHowTo {
		resp.Content = cdpdoc.ComposeHowTo(matches)
	} else {
		resp.Content = cdpdoc.ComposeGeneral(matches)
	}
	return resp, nil
}

// answerComparison retrieves separately for the first two mentioned
// platforms. Platform names are stripped from the query first so the
// names themselves do not dominate the similarity scores.
func (e *Engine) answerComparison(ctx context.Context, query cdpdoc.Query) (string, error) {
	first, second := query.Platforms[0], query.Platforms[1]

	stripped := cdpdoc.StripPlatformMentions(query.Text)
	topicQuery := cdpdoc.Query{
		Text:      stripped,
		Tokens:    e.understander.Tokenize(stripped),
		Intent:    query.Intent,
		Platforms: query.Platforms,
	}

	firstMatches, err := e.retrieve(ctx, topicQuery, first)
	if err != nil {
		return "", err
	}
	secondMatches, err := e.retrieve(ctx, topicQuery, second)
	if err != nil {
		return "", err
	}

	return cdpdoc.ComposeComparison(first, second, firstMatches, secondMatches), nil
}

func (e *Engine) retrieve(ctx context.Context, query cdpdoc.Query, platform cdpdoc.Platform) ([]cdpdoc.Match, error) {
	opts := cdpdoc.RetrieveOptions{
		Platform: platform,
		TopK:     e.TopK,
		MinScore: e.MinScore,
	}
	return e.retriever.Retrieve(ctx, query, opts.Normalize())
}

// queryPlatform picks the platform filter for a single-platform answer:
// the first mentioned platform, or none when the question is generic.
func (e *Engine) queryPlatform(query cdpdoc.Query) cdpdoc.Platform {
	if len(query.Platforms) > 0 {
		return query.Platforms[0]
	}
	return ""
}
