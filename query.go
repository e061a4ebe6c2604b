package cdpdoc

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of a query.
type Intent string

// Query intents.
const (
	IntentHowTo      Intent = "how_to"
	IntentComparison Intent = "comparison"
	IntentGeneral    Intent = "general"
	IntentIrrelevant Intent = "irrelevant"
)

// Query is an understood user question: the raw text, its normalized
// tokens, the classified intent, and the platforms it mentions in order
// of first mention.
type Query struct {
	Text      string     `json:"text"`
	Tokens    []string   `json:"tokens"`
	Intent    Intent     `json:"intent"`
	Platforms []Platform `json:"platforms"`
}

// Lexical cues for intent classification. Comparison cues are checked
// before how-to cues: "how do segment and lytics compare" is a comparison.
var (
	comparisonRe = regexp.MustCompile(`compare|comparison|difference between|\bvs\.?\b|versus|which is better|\bbetter\b|pros and cons`)
	howToRe      = regexp.MustCompile(`how (to|do|can|should)|steps (to|for)|guide (to|for)|tutorial|instructions|process (of|for)`)
)

// DefaultDomainVocabulary returns the topical terms that mark a query as
// relevant to customer data platforms even when no platform is named.
func DefaultDomainVocabulary() []string {
	return []string{
		"cdp", "customer data platform",
		"audience", "segment", "cohort", "persona", "profile",
		"integration", "source", "destination", "connector",
		"sdk", "api", "api key", "webhook",
		"event", "tracking", "identify", "identity", "resolution",
		"data", "schema", "warehouse", "pipeline", "sync",
		"consent", "privacy", "campaign", "analytics", "enrichment",
	}
}

// Understander classifies intent, extracts platform mentions, and decides
// topical relevance for incoming queries. It is stateless after
// construction and safe for concurrent use.
type Understander struct {
	tokenizer   Tokenizer
	domainTerms map[string]struct{}
}

// NewUnderstander creates an Understander. The tokenizer must be the same
// one the index was built with. If no vocabulary is given,
// DefaultDomainVocabulary is used; terms are normalized through the
// tokenizer so that stemmed query tokens match them.
func NewUnderstander(tokenizer Tokenizer, vocabulary ...string) *Understander {
	if len(vocabulary) == 0 {
		vocabulary = DefaultDomainVocabulary()
	}

	terms := make(map[string]struct{})
	for _, tok := range tokenizer.Tokenize(strings.Join(vocabulary, " ")) {
		terms[tok] = struct{}{}
	}

	return &Understander{tokenizer: tokenizer, domainTerms: terms}
}

// Understand analyzes a raw query. Empty or whitespace-only text yields an
// irrelevant query with no platforms. A query is irrelevant when it neither
// mentions a platform nor shares a token with the domain vocabulary;
// irrelevant queries are never labeled how_to or comparison.
func (u *Understander) Understand(text string) Query {
	q := Query{Text: text, Intent: IntentIrrelevant}

	if strings.TrimSpace(text) == "" {
		return q
	}

	q.Tokens = u.tokenizer.Tokenize(text)
	q.Platforms = ExtractPlatforms(text)

	if !u.relevant(q) {
		return q
	}

	q.Intent = classifyIntent(text)
	return q
}

// Tokenize exposes the understander's tokenizer for re-tokenizing derived
// query text (e.g. comparison queries with platform mentions stripped).
func (u *Understander) Tokenize(text string) []string {
	return u.tokenizer.Tokenize(text)
}

func (u *Understander) relevant(q Query) bool {
	if len(q.Platforms) > 0 {
		return true
	}
	for _, tok := range q.Tokens {
		if _, ok := u.domainTerms[tok]; ok {
			return true
		}
	}
	return false
}

func classifyIntent(text string) Intent {
	lowered := strings.ToLower(text)
	if comparisonRe.MatchString(lowered) {
		return IntentComparison
	}
	if howToRe.MatchString(lowered) {
		return IntentHowTo
	}
	return IntentGeneral
}
