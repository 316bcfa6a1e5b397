package openaichat

import (
	"fmt"

	"github.com/egokt/kanuni-openai/query"
	oa "github.com/openai/openai-go/v3"
)

// DefaultSchemaName is used when a json output declaration carries no
// schema name.
const DefaultSchemaName = "response"

// ResponseFormat renders a json-tagged output declaration into a strict
// json_schema response format. Declarations with any other tag fail,
// reporting what was actually found.
func ResponseFormat(o query.Output) (oa.ChatCompletionNewParamsResponseFormatUnion, error) {
	switch o.Kind {
	case query.OutputJSON:
	case "":
		return oa.ChatCompletionNewParamsResponseFormatUnion{},
			fmt.Errorf("cannot render response format: query output is unset (defaults to text)")
	default:
		return oa.ChatCompletionNewParamsResponseFormatUnion{},
			fmt.Errorf("cannot render response format: query output is %q, not json", o.Kind)
	}
	name := o.Name
	if name == "" {
		name = DefaultSchemaName
	}
	return oa.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &oa.ResponseFormatJSONSchemaParam{
			JSONSchema: oa.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   name,
				Strict: oa.Bool(true),
				Schema: o.Schema.StrictMap(),
			},
		},
	}, nil
}
