// Package query models a provider-agnostic conversational query: the
// instructions framing a request, the recorded conversation memory, the
// tools exposed to the model, and the declared output shape. Formatter
// packages consume queries read-only and convert them into the
// parameter shape of a specific chat API.
package query

// Query is the unit of work handed to a formatter. All fields are
// consumed read-only; a Query carries no state across formats.
type Query struct {
	Instructions Instructions
	Memory       *Memory
	Tools        *Registry
	Output       Output
}

// Instructions is the system/developer-level framing text preceding the
// conversation: a preamble followed by optional titled sections.
type Instructions struct {
	Preamble string
	Sections []Section
}

// Section is one titled block of instructions text.
type Section struct {
	Title string
	Body  string
}
