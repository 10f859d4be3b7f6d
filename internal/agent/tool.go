// Package agent is the thin reasoning-and-tool-use scaffold around the
// booking core: a typed tool registry, a model wrapper, a bounded ReAct
// loop, and a trace sink that observes model and tool calls.
package agent

import "context"

// Tool is a single callable tool with typed input and output.
//
// Tools hold business logic only. Argument parsing, schema validation, and
// result formatting for the model are the ToolChain's job, so the same tool
// works regardless of how the model is prompted.
type Tool[I, O any] interface {
	// Name is the identifier the model uses in tool calls.
	Name() string

	// Description is shown to the model in the tool catalog.
	Description() string

	// ParameterSchema is the JSON Schema for the tool's arguments.
	// Nil means the tool takes no arguments.
	ParameterSchema() map[string]any

	// Call executes the tool with the given typed input.
	Call(ctx context.Context, input I) (O, error)
}

// ToolFunc adapts a function to the Tool interface.
type ToolFunc[I, O any] struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, input I) (O, error)
}

// NewToolFunc creates a Tool from a function with typed input and output.
func NewToolFunc[I, O any](
	name, description string,
	schema map[string]any,
	fn func(ctx context.Context, input I) (O, error),
) *ToolFunc[I, O] {
	return &ToolFunc[I, O]{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *ToolFunc[I, O]) Name() string { return t.name }

// Description returns the catalog description.
func (t *ToolFunc[I, O]) Description() string { return t.description }

// ParameterSchema returns the JSON Schema for the tool's arguments.
func (t *ToolFunc[I, O]) ParameterSchema() map[string]any { return t.schema }

// Call executes the underlying function.
func (t *ToolFunc[I, O]) Call(ctx context.Context, input I) (O, error) {
	return t.fn(ctx, input)
}
