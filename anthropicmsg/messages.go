package anthropicmsg

import (
	"encoding/json"
	"fmt"

	anth "github.com/anthropics/anthropic-sdk-go"
	"github.com/egokt/kanuni-openai/query"
	"github.com/egokt/kanuni-openai/turns"
)

// SuccessContent is the tool_result text substituted for a tool call
// result that carries no payload.
const SuccessContent = "Success"

// renderMessages synthesizes the message list: one user or assistant
// message per grouped turn, with a tool-result turn collapsing into a
// single user message holding one tool_result block per result.
func renderMessages(grouped []turns.Turn) ([]anth.MessageParam, error) {
	messages := make([]anth.MessageParam, 0, len(grouped))
	for _, t := range grouped {
		switch t.Kind {
		case turns.KindUser:
			messages = append(messages, anth.MessageParam{
				Role: anth.MessageParamRoleUser,
				Content: []anth.ContentBlockParamUnion{
					{OfText: &anth.TextBlockParam{Text: t.Utterance.Content}},
				},
			})
		case turns.KindAssistant:
			messages = append(messages, assistantMessage(t))
		case turns.KindToolResults:
			messages = append(messages, toolResultMessage(t.Results))
		default:
			return nil, fmt.Errorf("unexpected turn kind: %q", t.Kind)
		}
	}
	return messages, nil
}

func assistantMessage(t turns.Turn) anth.MessageParam {
	blocks := make([]anth.ContentBlockParamUnion, 0, len(t.ToolCalls)+1)
	if t.Utterance != nil {
		blocks = append(blocks, anth.ContentBlockParamUnion{
			OfText: &anth.TextBlockParam{Text: t.Utterance.Content},
		})
	}
	for _, c := range t.ToolCalls {
		blocks = append(blocks, anth.ContentBlockParamUnion{
			OfToolUse: &anth.ToolUseBlockParam{
				ID:    c.ID,
				Name:  c.Name,
				Input: json.RawMessage(c.Arguments),
			},
		})
	}
	return anth.MessageParam{Role: anth.MessageParamRoleAssistant, Content: blocks}
}

func toolResultMessage(results []query.ToolCallResult) anth.MessageParam {
	blocks := make([]anth.ContentBlockParamUnion, 0, len(results))
	for _, r := range results {
		content := SuccessContent
		if r.Content != nil {
			content = *r.Content
		}
		blocks = append(blocks, anth.ContentBlockParamUnion{
			OfToolResult: &anth.ToolResultBlockParam{
				ToolUseID: r.CallID,
				Content: []anth.ToolResultBlockParamContentUnion{
					{OfText: &anth.TextBlockParam{Text: content}},
				},
			},
		})
	}
	return anth.MessageParam{Role: anth.MessageParamRoleUser, Content: blocks}
}
