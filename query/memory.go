package query

import "github.com/google/uuid"

// EntryKind tags the variant held by a memory Entry.
type EntryKind string

const (
	KindUtterance      EntryKind = "utterance"
	KindToolCall       EntryKind = "tool_call"
	KindToolCallResult EntryKind = "tool_call_result"
)

// Entry is one recorded step of a prior conversation. Exactly one of
// the payload fields is set, matching Kind; consumers switch on Kind
// and must treat any other value as an error.
type Entry struct {
	Kind           EntryKind
	Utterance      *Utterance
	ToolCall       *ToolCall
	ToolCallResult *ToolCallResult
}

// Utterance is a natural-language turn attributed to a source-domain
// role. Name is the optional display name, "" when absent.
type Utterance struct {
	Role    string
	Name    string
	Content string
}

// ToolCall is a model-issued function invocation. Arguments is the
// serialized JSON argument payload.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolCallResult is the returned value for a prior ToolCall, correlated
// by CallID. A nil Content means the call succeeded with no output.
type ToolCallResult struct {
	CallID  string
	Content *string
}

// Memory is the ordered log of conversation entries.
type Memory struct {
	Entries []Entry
}

// Append adds entries to the end of the log.
func (m *Memory) Append(entries ...Entry) {
	m.Entries = append(m.Entries, entries...)
}

// NewUtterance builds an utterance entry without a display name.
func NewUtterance(role, content string) Entry {
	return Entry{Kind: KindUtterance, Utterance: &Utterance{Role: role, Content: content}}
}

// NewNamedUtterance builds an utterance entry carrying a display name.
func NewNamedUtterance(role, name, content string) Entry {
	return Entry{Kind: KindUtterance, Utterance: &Utterance{Role: role, Name: name, Content: content}}
}

// NewToolCall builds a tool call entry. An empty id gets a generated
// call ID.
func NewToolCall(id, name, arguments string) Entry {
	if id == "" {
		id = NewCallID()
	}
	return Entry{Kind: KindToolCall, ToolCall: &ToolCall{ID: id, Name: name, Arguments: arguments}}
}

// NewToolCallResult builds a result entry with content.
func NewToolCallResult(callID, content string) Entry {
	return Entry{Kind: KindToolCallResult, ToolCallResult: &ToolCallResult{CallID: callID, Content: &content}}
}

// NewSuccessResult builds a result entry with no content, meaning the
// call succeeded without output.
func NewSuccessResult(callID string) Entry {
	return Entry{Kind: KindToolCallResult, ToolCallResult: &ToolCallResult{CallID: callID}}
}

// NewCallID generates a unique tool call identifier.
func NewCallID() string {
	return "call_" + uuid.NewString()
}
