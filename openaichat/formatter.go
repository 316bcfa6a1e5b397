// Package openaichat formats provider-agnostic queries into OpenAI Chat
// Completions request parameters: the ordered message list, the tool
// definitions, and the structured-output response format.
package openaichat

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/egokt/kanuni-openai/instructions"
	"github.com/egokt/kanuni-openai/query"
	"github.com/egokt/kanuni-openai/turns"
	oa "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// Instructions message roles supported by the Chat Completions API.
const (
	InstructionsRoleSystem    = "system"
	InstructionsRoleDeveloper = "developer"
)

// Config configures a Formatter. The zero value is usable: system-role
// instructions, the default instructions renderer, and the identity
// role mapper.
type Config struct {
	// InstructionsRole is the role of the leading instructions message,
	// "system" (default) or "developer".
	InstructionsRole string
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

// Formatter converts queries into Chat Completions params. Fields are
// read-only after construction, so a single Formatter is safe for
// concurrent use.
type Formatter struct {
	instructionsRole string
	instructions     func(q *query.Query) string
	roleMapper       turns.RoleMapper
	logger           *slog.Logger
}

// Params reserves per-call formatting options. It is accepted but
// currently inert: passing nil and passing an empty Params produce
// identical output.
type Params struct{}

// Result is the formatted request. ResponseFormat's zero value means
// the query declared text output and the field is omitted on the wire.
// Tools is always non-nil, empty when the query exposes no tools.
type Result struct {
	Messages       []oa.ChatCompletionMessageParamUnion
	ResponseFormat oa.ChatCompletionNewParamsResponseFormatUnion
	Tools          []oa.ChatCompletionToolUnionParam
}

// New constructs a Formatter, applying defaults for unset fields.
func New(cfg Config) (*Formatter, error) {
	switch cfg.InstructionsRole {
	case "":
		cfg.InstructionsRole = InstructionsRoleSystem
	case InstructionsRoleSystem, InstructionsRoleDeveloper:
	default:
		return nil, fmt.Errorf("unsupported instructions role: %q", cfg.InstructionsRole)
	}
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
		instructionsRole: cfg.InstructionsRole,
		instructions:     cfg.Instructions,
		roleMapper:       cfg.RoleMapper,
		logger:           cfg.Logger,
	}, nil
}

// Format converts a query into Chat Completions request parameters. It
// is a pure function of the query and the formatter's configuration;
// failures are immediate and never yield partial results.
func (f *Formatter) Format(q *query.Query, params *Params) (*Result, error) {
	_ = params // reserved
	if q == nil {
		return nil, fmt.Errorf("query cannot be nil")
	}
	grouped, err := turns.Regroup(q.Memory, f.roleMapper)
	if err != nil {
		return nil, err
	}
	messages, err := f.renderMessages(f.instructions(q), grouped)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Messages: messages,
		Tools:    renderTools(q.Tools),
	}
	switch q.Output.Kind {
	case "", query.OutputText:
		// response_format stays omitted
	case query.OutputJSON:
		rf, err := ResponseFormat(q.Output)
		if err != nil {
			return nil, err
		}
		res.ResponseFormat = rf
	default:
		return nil, fmt.Errorf("unknown output type: %q", q.Output.Kind)
	}
	f.logger.Debug("formatted query",
		slog.Int("messages", len(res.Messages)),
		slog.Int("tools", len(res.Tools)),
		slog.Bool("response_format", res.ResponseFormat.OfJSONSchema != nil),
	)
	return res, nil
}

// Params assembles the result into ready-to-send request params for the
// given model.
func (r *Result) Params(model string) oa.ChatCompletionNewParams {
	params := oa.ChatCompletionNewParams{
		Messages: r.Messages,
		Model:    shared.ChatModel(model),
	}
	if len(r.Tools) > 0 {
		params.Tools = r.Tools
	}
	params.ResponseFormat = r.ResponseFormat
	return params
}
