package openaichat

import (
	"fmt"

	"github.com/egokt/kanuni-openai/query"
	"github.com/egokt/kanuni-openai/turns"
	oa "github.com/openai/openai-go/v3"
)

// SuccessContent is the tool message content substituted for a tool
// call result that carries no payload.
const SuccessContent = "Success"

// renderMessages synthesizes the final ordered message list: the
// leading instructions message followed by one wire message per grouped
// turn, except tool-result turns which fan out into one tool message
// per accumulated result.
func (f *Formatter) renderMessages(instr string, grouped []turns.Turn) ([]oa.ChatCompletionMessageParamUnion, error) {
	messages := make([]oa.ChatCompletionMessageParamUnion, 0, len(grouped)+1)
	messages = append(messages, f.instructionsMessage(instr))
	for _, t := range grouped {
		switch t.Kind {
		case turns.KindUser:
			messages = append(messages, userMessage(t.Utterance))
		case turns.KindAssistant:
			messages = append(messages, assistantMessage(t))
		case turns.KindToolResults:
			for _, r := range t.Results {
				messages = append(messages, toolMessage(r))
			}
		default:
			return nil, fmt.Errorf("unexpected turn kind: %q", t.Kind)
		}
	}
	return messages, nil
}

func (f *Formatter) instructionsMessage(instr string) oa.ChatCompletionMessageParamUnion {
	if f.instructionsRole == InstructionsRoleDeveloper {
		return oa.ChatCompletionMessageParamUnion{
			OfDeveloper: &oa.ChatCompletionDeveloperMessageParam{
				Content: oa.ChatCompletionDeveloperMessageParamContentUnion{OfString: oa.String(instr)},
			},
		}
	}
	return oa.ChatCompletionMessageParamUnion{
		OfSystem: &oa.ChatCompletionSystemMessageParam{
			Content: oa.ChatCompletionSystemMessageParamContentUnion{OfString: oa.String(instr)},
		},
	}
}

func userMessage(u *query.Utterance) oa.ChatCompletionMessageParamUnion {
	msg := &oa.ChatCompletionUserMessageParam{
		Content: oa.ChatCompletionUserMessageParamContentUnion{OfString: oa.String(u.Content)},
	}
	if u.Name != "" {
		msg.Name = oa.String(u.Name)
	}
	return oa.ChatCompletionMessageParamUnion{OfUser: msg}
}

func assistantMessage(t turns.Turn) oa.ChatCompletionMessageParamUnion {
	msg := &oa.ChatCompletionAssistantMessageParam{}
	if t.Utterance != nil {
		msg.Content = oa.ChatCompletionAssistantMessageParamContentUnion{OfString: oa.String(t.Utterance.Content)}
	}
	if len(t.ToolCalls) > 0 {
		calls := make([]oa.ChatCompletionMessageToolCallUnionParam, 0, len(t.ToolCalls))
		for _, c := range t.ToolCalls {
			calls = append(calls, oa.ChatCompletionMessageToolCallUnionParam{
				OfFunction: &oa.ChatCompletionMessageFunctionToolCallParam{
					ID: c.ID,
					Function: oa.ChatCompletionMessageFunctionToolCallFunctionParam{
						Name:      c.Name,
						Arguments: c.Arguments,
					},
				},
			})
		}
		msg.ToolCalls = calls
	}
	return oa.ChatCompletionMessageParamUnion{OfAssistant: msg}
}

func toolMessage(r query.ToolCallResult) oa.ChatCompletionMessageParamUnion {
	content := SuccessContent
	if r.Content != nil {
		content = *r.Content
	}
	return oa.ChatCompletionMessageParamUnion{
		OfTool: &oa.ChatCompletionToolMessageParam{
			Content:    oa.ChatCompletionToolMessageParamContentUnion{OfString: oa.String(content)},
			ToolCallID: r.CallID,
		},
	}
}
