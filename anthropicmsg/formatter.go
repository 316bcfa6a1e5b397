// Package anthropicmsg formats provider-agnostic queries into Anthropic
// Messages API request parameters. It shares the grouping pipeline with
// the Chat Completions formatter but follows the Messages API's shape:
// instructions become the top-level system prompt, tool calls render as
// tool_use content blocks, and tool results render as tool_result
// blocks inside a user message.
package anthropicmsg

import (
	"fmt"
	"io"
	"log/slog"

	anth "github.com/anthropics/anthropic-sdk-go"
	"github.com/egokt/kanuni-openai/instructions"
	"github.com/egokt/kanuni-openai/query"
	"github.com/egokt/kanuni-openai/turns"
)

// Config configures a Formatter. The zero value is usable.
type Config struct {
	// Instructions renders a query's instructions section to a string.
	// Defaults to instructions.Render.
	Instructions func(q *query.Query) string
	// RoleMapper maps source-domain role labels to user/assistant.
	// Defaults to turns.DefaultRoleMapper.
	RoleMapper turns.RoleMapper
	// Logger receives debug lines per format. Defaults to a discard
	// logger.
	Logger *slog.Logger
}

// Formatter converts queries into Messages API params. Fields are
// read-only after construction, so a single Formatter is safe for
// concurrent use.
type Formatter struct {
	instructions func(q *query.Query) string
	roleMapper   turns.RoleMapper
	logger       *slog.Logger
}

// Params reserves per-call formatting options; currently inert.
type Params struct{}

// Result is the formatted request. Tools is always non-nil, empty when
// the query exposes no tools.
type Result struct {
	System   []anth.TextBlockParam
	Messages []anth.MessageParam
	Tools    []anth.ToolUnionParam
}

// New constructs a Formatter, applying defaults for unset fields.
func New(cfg Config) (*Formatter, error) {
	if cfg.Instructions == nil {
		cfg.Instructions = instructions.Render
	}
	if cfg.RoleMapper == nil {
		cfg.RoleMapper = turns.DefaultRoleMapper
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Formatter{
		instructions: cfg.Instructions,
		roleMapper:   cfg.RoleMapper,
		logger:       cfg.Logger,
	}, nil
}

// Format converts a query into Messages API request parameters.
func (f *Formatter) Format(q *query.Query, params *Params) (*Result, error) {
	_ = params // reserved
	if q == nil {
		return nil, fmt.Errorf("query cannot be nil")
	}
	grouped, err := turns.Regroup(q.Memory, f.roleMapper)
	if err != nil {
		return nil, err
	}
	messages, err := renderMessages(grouped)
	if err != nil {
		return nil, err
	}
	system := []anth.TextBlockParam{{Text: f.instructions(q)}}
	switch q.Output.Kind {
	case "", query.OutputText:
	case query.OutputJSON:
		// The Messages API has no response_format; steer structured
		// output through the system prompt instead.
		note, err := schemaNote(q.Output)
		if err != nil {
			return nil, err
		}
		system = append(system, anth.TextBlockParam{Text: note})
	default:
		return nil, fmt.Errorf("unknown output type: %q", q.Output.Kind)
	}
	res := &Result{
		System:   system,
		Messages: messages,
		Tools:    renderTools(q.Tools),
	}
	f.logger.Debug("formatted query",
		slog.Int("messages", len(res.Messages)),
		slog.Int("tools", len(res.Tools)),
	)
	return res, nil
}

// Params assembles the result into ready-to-send request params for the
// given model and output budget.
func (r *Result) Params(model string, maxTokens int64) anth.MessageNewParams {
	params := anth.MessageNewParams{
		Messages:  r.Messages,
		Model:     anth.Model(model),
		MaxTokens: maxTokens,
		System:    r.System,
	}
	if len(r.Tools) > 0 {
		params.Tools = r.Tools
	}
	return params
}
