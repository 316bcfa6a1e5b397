package anthropicmsg_test

import (
	"encoding/json"
	"testing"

	anth "github.com/anthropics/anthropic-sdk-go"
	"github.com/egokt/kanuni-openai/anthropicmsg"
	"github.com/egokt/kanuni-openai/query"
	"github.com/egokt/kanuni-openai/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFormatter(t *testing.T, cfg anthropicmsg.Config) *anthropicmsg.Formatter {
	t.Helper()
	f, err := anthropicmsg.New(cfg)
	require.NoError(t, err)
	return f
}

func queryWithMemory(entries ...query.Entry) *query.Query {
	q := &query.Query{Instructions: query.Instructions{Preamble: "Explain X"}}
	if len(entries) > 0 {
		q.Memory = &query.Memory{}
		q.Memory.Append(entries...)
	}
	return q
}

func TestFormatSystemPrompt(t *testing.T) {
	f := mustFormatter(t, anthropicmsg.Config{})
	res, err := f.Format(queryWithMemory(), nil)
	require.NoError(t, err)

	require.Len(t, res.System, 1)
	assert.Equal(t, "Explain X", res.System[0].Text)
	assert.Empty(t, res.Messages)
	require.NotNil(t, res.Tools)
	assert.Empty(t, res.Tools)
}

func TestFormatConversationWithTools(t *testing.T) {
	f := mustFormatter(t, anthropicmsg.Config{})
	res, err := f.Format(queryWithMemory(
		query.NewUtterance("user", "q"),
		query.NewToolCall("c1", "t1", `{"a":1}`),
		query.NewToolCallResult("c1", "r1"),
		query.NewSuccessResult("c2"),
		query.NewUtterance("assistant", "done"),
	), nil)
	require.NoError(t, err)

	require.Len(t, res.Messages, 4)

	user := res.Messages[0]
	assert.Equal(t, anth.MessageParamRoleUser, user.Role)
	require.Len(t, user.Content, 1)
	assert.Equal(t, "q", user.Content[0].OfText.Text)

	asst := res.Messages[1]
	assert.Equal(t, anth.MessageParamRoleAssistant, asst.Role)
	require.Len(t, asst.Content, 1)
	toolUse := asst.Content[0].OfToolUse
	require.NotNil(t, toolUse)
	assert.Equal(t, "c1", toolUse.ID)
	assert.Equal(t, "t1", toolUse.Name)
	raw, ok := toolUse.Input.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	// Both results collapse into one user message with two blocks.
	results := res.Messages[2]
	assert.Equal(t, anth.MessageParamRoleUser, results.Role)
	require.Len(t, results.Content, 2)
	first := results.Content[0].OfToolResult
	require.NotNil(t, first)
	assert.Equal(t, "c1", first.ToolUseID)
	assert.Equal(t, "r1", first.Content[0].OfText.Text)
	second := results.Content[1].OfToolResult
	require.NotNil(t, second)
	assert.Equal(t, "c2", second.ToolUseID)
	assert.Equal(t, anthropicmsg.SuccessContent, second.Content[0].OfText.Text)

	final := res.Messages[3]
	assert.Equal(t, anth.MessageParamRoleAssistant, final.Role)
	assert.Equal(t, "done", final.Content[0].OfText.Text)
}

// Tool call followed by narration merges into one assistant message
// whose text block precedes the tool_use block.
func TestFormatToolCallNarrationMerge(t *testing.T) {
	f := mustFormatter(t, anthropicmsg.Config{})
	res, err := f.Format(queryWithMemory(
		query.NewToolCall("c1", "t1", "{}"),
		query.NewUtterance("assistant", "here"),
	), nil)
	require.NoError(t, err)

	require.Len(t, res.Messages, 1)
	blocks := res.Messages[0].Content
	require.Len(t, blocks, 2)
	assert.Equal(t, "here", blocks[0].OfText.Text)
	assert.Equal(t, "c1", blocks[1].OfToolUse.ID)
}

func TestFormatToolDefinitions(t *testing.T) {
	reg := query.NewRegistry()
	require.NoError(t, reg.Register(query.Tool{
		Name:        "search",
		Description: "searches things",
		Parameters: &schema.Schema{
			Type:       "object",
			Properties: map[string]*schema.Schema{"q": {Type: "string"}},
		},
	}))
	f := mustFormatter(t, anthropicmsg.Config{})
	q := queryWithMemory()
	q.Tools = reg
	res, err := f.Format(q, nil)
	require.NoError(t, err)

	require.Len(t, res.Tools, 1)
	tool := res.Tools[0].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "search", tool.Name)
	assert.Equal(t, "searches things", tool.Description.Value)
	assert.Equal(t, []string{"q"}, tool.InputSchema.Required)
	props, ok := tool.InputSchema.Properties.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "q")
}

func TestFormatJSONOutputSteersSystemPrompt(t *testing.T) {
	f := mustFormatter(t, anthropicmsg.Config{})
	q := queryWithMemory()
	q.Output = query.JSONOutput("answer", &schema.Schema{
		Type:       "object",
		Properties: map[string]*schema.Schema{"value": {Type: "string"}},
	})
	res, err := f.Format(q, nil)
	require.NoError(t, err)

	require.Len(t, res.System, 2)
	assert.Contains(t, res.System[1].Text, "JSON Schema")
	assert.Contains(t, res.System[1].Text, `"value"`)
}

func TestFormatUnknownOutputKindFails(t *testing.T) {
	f := mustFormatter(t, anthropicmsg.Config{})
	q := queryWithMemory()
	q.Output = query.Output{Kind: query.OutputKind("yaml")}
	_, err := f.Format(q, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestFormatParamInsensitive(t *testing.T) {
	f := mustFormatter(t, anthropicmsg.Config{})
	q := queryWithMemory(query.NewUtterance("user", "hi"))
	a, err := f.Format(q, nil)
	require.NoError(t, err)
	b, err := f.Format(q, &anthropicmsg.Params{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResultParamsAssembly(t *testing.T) {
	f := mustFormatter(t, anthropicmsg.Config{})
	res, err := f.Format(queryWithMemory(query.NewUtterance("user", "hi")), nil)
	require.NoError(t, err)
	params := res.Params("claude-sonnet-4-20250514", 1024)
	assert.Equal(t, int64(1024), params.MaxTokens)
	assert.Len(t, params.Messages, 1)
	assert.Len(t, params.System, 1)
}
