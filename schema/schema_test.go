package schema_test

import (
	"reflect"
	"testing"

	"github.com/egokt/kanuni-openai/schema"
)

func TestStrictMapRewritesObjects(t *testing.T) {
	s := &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"name": {Type: "string"},
			"tags": {Type: "array", Items: &schema.Schema{Type: "string"}},
			"address": {
				Type:       "object",
				Properties: map[string]*schema.Schema{"city": {Type: "string"}},
				Required:   []string{},
			},
		},
		Required: []string{"name"},
	}
	m := s.StrictMap()

	if m["additionalProperties"] != false {
		t.Errorf("top-level object must forbid additional properties")
	}
	required, ok := m["required"].([]string)
	if !ok {
		t.Fatalf("required missing or wrong type: %T", m["required"])
	}
	want := []string{"address", "name", "tags"}
	if !reflect.DeepEqual(required, want) {
		t.Errorf("strict required must enumerate all properties sorted: got %v, want %v", required, want)
	}

	props := m["properties"].(map[string]any)
	address := props["address"].(map[string]any)
	if address["additionalProperties"] != false {
		t.Errorf("nested objects must be rewritten too")
	}
	if got := address["required"].([]string); !reflect.DeepEqual(got, []string{"city"}) {
		t.Errorf("nested required: got %v", got)
	}
}

func TestMapKeepsDeclaredRequired(t *testing.T) {
	s := &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"a": {Type: "string"},
			"b": {Type: "string"},
		},
		Required: []string{"b"},
	}
	m := s.Map()
	if _, ok := m["additionalProperties"]; ok {
		t.Errorf("non-strict rendering must not inject additionalProperties")
	}
	if got := m["required"].([]string); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("declared required must survive: got %v", got)
	}
}

func TestNilSchemaRenders(t *testing.T) {
	var s *schema.Schema
	if got := s.StrictMap(); len(got) != 0 {
		t.Errorf("nil schema must render as unconstrained: %v", got)
	}
}

func TestForStruct(t *testing.T) {
	type inner struct {
		City string `json:"city"`
	}
	type params struct {
		Query    string            `json:"query" description:"search terms"`
		Limit    int               `json:"limit,omitempty"`
		Exact    *bool             `json:"exact"`
		Labels   map[string]string `json:"labels,omitempty"`
		Where    inner             `json:"where"`
		Ignored  string            `json:"-"`
		internal string
	}

	s, err := schema.For(params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != "object" {
		t.Fatalf("expected object schema, got %q", s.Type)
	}
	if _, ok := s.Properties["Ignored"]; ok {
		t.Errorf("json:\"-\" fields must be skipped")
	}
	if _, ok := s.Properties["internal"]; ok {
		t.Errorf("unexported fields must be skipped")
	}
	if got := s.Properties["query"]; got == nil || got.Type != "string" || got.Description != "search terms" {
		t.Errorf("query property wrong: %+v", got)
	}
	if got := s.Properties["limit"]; got == nil || got.Type != "integer" {
		t.Errorf("limit property wrong: %+v", got)
	}
	if got := s.Properties["labels"]; got == nil || got.Type != "object" || got.AdditionalProperties == nil {
		t.Errorf("labels property wrong: %+v", got)
	}
	if got := s.Properties["where"]; got == nil || got.Type != "object" || got.Properties["city"] == nil {
		t.Errorf("nested struct wrong: %+v", got)
	}
	// omitempty and pointer fields are optional
	want := []string{"query", "where"}
	if !reflect.DeepEqual(s.Required, want) {
		t.Errorf("required fields: got %v, want %v", s.Required, want)
	}
}

func TestForRejectsUnsupportedTypes(t *testing.T) {
	if _, err := schema.For(map[int]string{}); err == nil {
		t.Errorf("non-string map keys must be rejected")
	}
	if _, err := schema.For(make(chan int)); err == nil {
		t.Errorf("channels must be rejected")
	}
	if _, err := schema.For(nil); err == nil {
		t.Errorf("nil must be rejected")
	}
}
