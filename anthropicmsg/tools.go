package anthropicmsg

import (
	"encoding/json"
	"fmt"

	anth "github.com/anthropics/anthropic-sdk-go"
	"github.com/egokt/kanuni-openai/query"
)

// renderTools converts the query's tool registry into Messages API tool
// params in registration order. The returned slice is never nil.
func renderTools(reg *query.Registry) []anth.ToolUnionParam {
	if reg == nil {
		return []anth.ToolUnionParam{}
	}
	names := reg.Names()
	out := make([]anth.ToolUnionParam, 0, len(names))
	for _, name := range names {
		t, ok := reg.Get(name)
		if !ok {
			continue
		}
		tp := &anth.ToolParam{
			Name:        t.Name,
			InputSchema: inputSchema(t),
		}
		if t.Description != "" {
			tp.Description = anth.String(t.Description)
		}
		out = append(out, anth.ToolUnionParam{OfTool: tp})
	}
	return out
}

// inputSchema maps a tool's parameter schema onto the input_schema
// shape, which always declares an object at the top level.
func inputSchema(t query.Tool) anth.ToolInputSchemaParam {
	in := anth.ToolInputSchemaParam{Type: "object"}
	if t.Parameters == nil {
		return in
	}
	m := t.Parameters.StrictMap()
	if props, ok := m["properties"]; ok {
		in.Properties = props
	}
	if req, ok := m["required"].([]string); ok {
		in.Required = req
	}
	if ap, ok := m["additionalProperties"]; ok {
		in.ExtraFields = map[string]any{"additionalProperties": ap}
	}
	return in
}

// schemaNote renders the system-prompt steering text for a json output
// declaration. Declarations with any other tag fail, reporting what was
// actually found.
func schemaNote(o query.Output) (string, error) {
	switch o.Kind {
	case query.OutputJSON:
	case "":
		return "", fmt.Errorf("cannot render output schema: query output is unset (defaults to text)")
	default:
		return "", fmt.Errorf("cannot render output schema: query output is %q, not json", o.Kind)
	}
	rendered, err := json.Marshal(o.Schema.StrictMap())
	if err != nil {
		return "", fmt.Errorf("marshal output schema: %w", err)
	}
	return "Respond with a single JSON document conforming to this JSON Schema, with no surrounding prose:\n" + string(rendered), nil
}
