package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// For derives a Schema from a Go value, typically a struct describing
// tool parameters or a structured output shape. Field names follow
// `json` tags; fields tagged `json:"-"` are skipped, and fields marked
// omitempty (or typed as pointers) are treated as optional.
func For(v any) (*Schema, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot derive schema from nil value")
	}
	return forType(reflect.TypeOf(v))
}

func forType(t reflect.Type) (*Schema, error) {
	switch t.Kind() {
	case reflect.Bool:
		return &Schema{Type: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}, nil
	case reflect.String:
		return &Schema{Type: "string"}, nil
	case reflect.Slice, reflect.Array:
		items, err := forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("slice element of %s: %w", t, err)
		}
		return &Schema{Type: "array", Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type %s is not a string", t.Key())
		}
		values, err := forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("map value of %s: %w", t, err)
		}
		return &Schema{Type: "object", AdditionalProperties: values}, nil
	case reflect.Pointer:
		return forType(t.Elem())
	case reflect.Struct:
		return forStruct(t)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			// any: unconstrained node
			return &Schema{}, nil
		}
		return nil, fmt.Errorf("unsupported interface type %s", t)
	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

func forStruct(t reflect.Type) (*Schema, error) {
	out := &Schema{Type: "object", Properties: make(map[string]*Schema)}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		optional := field.Type.Kind() == reflect.Pointer
		if tag, ok := field.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					optional = true
				}
			}
		}
		fs, err := forType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}
		if desc, ok := field.Tag.Lookup("description"); ok {
			fs.Description = desc
		}
		out.Properties[name] = fs
		if !optional {
			out.Required = append(out.Required, name)
		}
	}
	return out, nil
}
