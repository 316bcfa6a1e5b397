package turns

import (
	"fmt"

	"github.com/egokt/kanuni-openai/query"
)

// Kind tags the variant of a grouped Turn.
type Kind string

const (
	// KindUser is a single user utterance.
	KindUser Kind = "user"
	// KindAssistant is an assistant turn: optional narration plus zero
	// or more tool calls. At least one of the two is always present.
	KindAssistant Kind = "assistant"
	// KindToolResults is a run of consecutive tool call results.
	KindToolResults Kind = "tool_results"
)

// Turn is one grouped conversational turn produced by Regroup.
type Turn struct {
	Kind      Kind
	Utterance *query.Utterance
	ToolCalls []query.ToolCall
	Results   []query.ToolCallResult
}

// Regroup folds the memory entry log into grouped turns in a single
// left-to-right pass, merging adjacent entries that belong to the same
// conversational turn:
//
//   - consecutive tool calls accumulate into one assistant turn, and an
//     utterance arriving while that turn still lacks narration attaches
//     to it rather than opening a new turn;
//   - consecutive tool call results batch into one tool-results turn;
//   - every other utterance opens a fresh turn per its mapped role.
//
// Memory must not begin with a tool call result; such an orphan fails
// immediately, naming its call ID. A nil memory yields no turns.
func Regroup(m *query.Memory, mapRole RoleMapper) ([]Turn, error) {
	if m == nil {
		return nil, nil
	}
	var out []Turn
	var current *Turn

	flush := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
		}
	}

	for _, entry := range m.Entries {
		switch entry.Kind {
		case query.KindUtterance:
			u := entry.Utterance
			role, err := mapRole(u.Role, u.Name)
			if err != nil {
				return nil, err
			}
			if role != RoleUser && role != RoleAssistant {
				return nil, ErrUnsupportedRole
			}
			if current != nil && current.Kind == KindAssistant && current.Utterance == nil {
				// Tool calls preceded their narration; complete the
				// open assistant turn instead of starting a new one.
				current.Utterance = u
				continue
			}
			flush()
			if role == RoleUser {
				current = &Turn{Kind: KindUser, Utterance: u}
			} else {
				current = &Turn{Kind: KindAssistant, Utterance: u}
			}
		case query.KindToolCall:
			c := entry.ToolCall
			if current == nil || current.Kind != KindAssistant {
				flush()
				current = &Turn{Kind: KindAssistant}
			}
			current.ToolCalls = append(current.ToolCalls, *c)
		case query.KindToolCallResult:
			r := entry.ToolCallResult
			if current == nil {
				return nil, fmt.Errorf("tool call result %q has no preceding turn", r.CallID)
			}
			if current.Kind != KindToolResults {
				flush()
				current = &Turn{Kind: KindToolResults}
			}
			current.Results = append(current.Results, *r)
		default:
			return nil, fmt.Errorf("unexpected memory entry type: %q", entry.Kind)
		}
	}
	flush()
	return out, nil
}
