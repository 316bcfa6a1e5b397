// Package schema models JSON Schema documents for tool parameters and
// structured output declarations, and renders them to the generic map
// form chat APIs accept.
package schema

import "sort"

// Schema is a JSON Schema node. The zero value renders as an
// unconstrained schema (any JSON value).
type Schema struct {
	Type                 string             `json:"type,omitempty"`
	Description          string             `json:"description,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Enum                 []string           `json:"enum,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty"`
}

// Map renders the schema as it stands, without strict-mode rewriting.
func (s *Schema) Map() map[string]any {
	return s.render(false)
}

// StrictMap renders the schema with strict-mode semantics: every object
// node forbids additional properties and enumerates all of its
// properties as required, recursively. Chat APIs demand this shape for
// guaranteed structured output.
func (s *Schema) StrictMap() map[string]any {
	return s.render(true)
}

func (s *Schema) render(strict bool) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	out := make(map[string]any)
	if s.Type != "" {
		out["type"] = s.Type
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		enum := make([]any, 0, len(s.Enum))
		for _, e := range s.Enum {
			enum = append(enum, e)
		}
		out["enum"] = enum
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.render(strict)
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = s.Items.render(strict)
	}
	switch {
	case strict && s.Type == "object":
		// Strict mode: required lists every property, sorted for
		// deterministic output.
		required := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			required = append(required, name)
		}
		sort.Strings(required)
		out["required"] = required
		out["additionalProperties"] = false
	case len(s.Required) > 0:
		required := append([]string(nil), s.Required...)
		sort.Strings(required)
		out["required"] = required
	}
	if !strict && s.AdditionalProperties != nil {
		out["additionalProperties"] = s.AdditionalProperties.render(strict)
	}
	return out
}
