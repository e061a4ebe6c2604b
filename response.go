package cdpdoc

// Response is a composed answer: markdown content plus metadata about how
// the query was understood. Responses are produced fresh per query and
// never stored; there is no conversation memory.
type Response struct {
	Content   string     `json:"content"` // Markdown
	Intent    Intent     `json:"intent"`
	Platforms []Platform `json:"platforms"`
}
