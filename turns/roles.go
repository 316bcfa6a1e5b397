// Package turns folds an ordered conversation memory into the coarser
// turn structure chat APIs expect: a single assistant turn may carry
// both narration and several tool calls, and tool results batch into
// their own turns for emission as correlated standalone messages.
package turns

import (
	"errors"
	"fmt"
)

// Role is a conversational role a source-domain role label maps onto.
// Only user and assistant utterances can appear in memory.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RoleMapper maps a source-domain role label and optional display name
// (empty when absent) to a supported Role. Mappers must be
// deterministic and side-effect free.
type RoleMapper func(role, name string) (Role, error)

// ErrUnsupportedRole reports a mapper returning a role other than user
// or assistant for an utterance.
var ErrUnsupportedRole = errors.New("only user and assistant utterances are supported")

// DefaultRoleMapper is the identity policy: it accepts only the literal
// labels "user" and "assistant" and rejects anything else.
func DefaultRoleMapper(role, name string) (Role, error) {
	switch role {
	case "user":
		return RoleUser, nil
	case "assistant":
		return RoleAssistant, nil
	default:
		return "", fmt.Errorf("unknown role: %q", role)
	}
}
