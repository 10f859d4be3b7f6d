// Package schema builds and validates JSON Schemas for tool parameters.
//
// Tool definitions declare their parameters with the builder functions:
//
//	schema.Object(map[string]*schema.Property{
//	    "origin":      schema.String("Origin airport code (e.g., SFO)"),
//	    "destination": schema.String("Destination airport code"),
//	}, "origin") // "origin" is required
//
// The toolchain compiles each declared schema once at registration and
// validates incoming arguments against it before the tool runs.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema pairs a raw schema map (for prompts and serialization) with its
// compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the underlying map representation, suitable for rendering
// into prompts.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate checks data against the compiled schema. A nil Schema accepts
// everything.
func (s *Schema) Validate(data map[string]any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(toAnyMap(data)); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// toAnyMap re-types the map so the validator sees plain any values.
func toAnyMap(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	return data
}

// ValidationError wraps a JSON Schema validation failure with a message the
// model can act on.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a raw schema map. A nil map compiles to a nil Schema,
// which accepts any arguments.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	schemaData, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaData); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Schema{raw: raw, compiled: compiled}, nil
}

// MustCompile is Compile for schemas defined at init time; it panics on
// error.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// -----------------------------------------------------------------------------
// Builders
// -----------------------------------------------------------------------------

// Object creates an object schema from the given properties. Property names
// passed as variadic arguments are marked required.
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}
	obj := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		obj["required"] = required
	}
	return obj
}

// Property is a single schema property under construction.
type Property struct {
	fields map[string]any
}

func newProperty(typ, description string) *Property {
	fields := map[string]any{"type": typ}
	if description != "" {
		fields["description"] = description
	}
	return &Property{fields: fields}
}

// String creates a string property.
func String(description string) *Property {
	return newProperty("string", description)
}

// Integer creates an integer property.
func Integer(description string) *Property {
	return newProperty("integer", description)
}

// Number creates a numeric property.
func Number(description string) *Property {
	return newProperty("number", description)
}

// Boolean creates a boolean property.
func Boolean(description string) *Property {
	return newProperty("boolean", description)
}

// Array creates an array property whose items follow the given property.
func Array(description string, items *Property) *Property {
	p := newProperty("array", description)
	p.fields["items"] = items.build()
	return p
}

// ObjectProp creates a nested object property. Property names passed as
// variadic arguments are marked required.
func ObjectProp(description string, properties map[string]*Property, required ...string) *Property {
	p := newProperty("object", description)
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}
	p.fields["properties"] = props
	if len(required) > 0 {
		p.fields["required"] = required
	}
	return p
}

// Enum restricts the property to the given values. Returns the property for
// chaining.
func (p *Property) Enum(values ...any) *Property {
	p.fields["enum"] = values
	return p
}

// Min sets the minimum for numeric properties. Returns the property for
// chaining.
func (p *Property) Min(min float64) *Property {
	p.fields["minimum"] = min
	return p
}

// Max sets the maximum for numeric properties. Returns the property for
// chaining.
func (p *Property) Max(max float64) *Property {
	p.fields["maximum"] = max
	return p
}

func (p *Property) build() map[string]any {
	return p.fields
}
