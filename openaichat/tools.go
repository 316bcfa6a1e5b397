package openaichat

import (
	"github.com/egokt/kanuni-openai/query"
	oa "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// renderTools converts the query's tool registry into function tool
// definitions in registration order. Parameter schemas are rendered in
// strict mode. The returned slice is never nil.
func renderTools(reg *query.Registry) []oa.ChatCompletionToolUnionParam {
	if reg == nil {
		return []oa.ChatCompletionToolUnionParam{}
	}
	names := reg.Names()
	out := make([]oa.ChatCompletionToolUnionParam, 0, len(names))
	for _, name := range names {
		t, ok := reg.Get(name)
		if !ok {
			continue
		}
		fn := shared.FunctionDefinitionParam{
			Name:   t.Name,
			Strict: oa.Bool(true),
		}
		if t.Description != "" {
			fn.Description = oa.String(t.Description)
		}
		if t.Parameters != nil {
			fn.Parameters = t.Parameters.StrictMap()
		}
		out = append(out, oa.ChatCompletionFunctionTool(fn))
	}
	return out
}
