package query

import "github.com/egokt/kanuni-openai/schema"

// OutputKind tags the declared output shape of a query.
type OutputKind string

const (
	// OutputText declares free-form text output. The zero Output value
	// is treated as text.
	OutputText OutputKind = "text"
	// OutputJSON declares structured output conforming to a schema.
	OutputJSON OutputKind = "json"
)

// Output declares the shape the model's answer must take. Name and
// Schema are meaningful only for OutputJSON.
type Output struct {
	Kind   OutputKind
	Name   string
	Schema *schema.Schema
}

// TextOutput declares free-form text output.
func TextOutput() Output {
	return Output{Kind: OutputText}
}

// JSONOutput declares structured output with the given schema name and
// shape. An empty name falls back to the formatter default.
func JSONOutput(name string, s *schema.Schema) Output {
	return Output{Kind: OutputJSON, Name: name, Schema: s}
}
