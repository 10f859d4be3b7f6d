package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skydesk/internal/schema"
)

// ToolChain is a name-keyed registry of tools. It renders the tool catalog
// for the system prompt and executes parsed tool calls: validate arguments
// against the tool's compiled schema, convert them to the typed input, and
// invoke the tool.
type ToolChain struct {
	order   []string
	entries map[string]*toolEntry
}

type toolEntry struct {
	meta     *toolMeta
	compiled *schema.Schema
}

// NewToolChain creates an empty ToolChain.
func NewToolChain() *ToolChain {
	return &ToolChain{entries: make(map[string]*toolEntry)}
}

// Register adds a tool to the chain. The tool must implement Tool[I, O] for
// some I and O. Panics on a nil or malformed tool and on duplicate names:
// tool registration happens at startup, and a broken registry is a
// programming error. Returns the chain for chaining.
func (c *ToolChain) Register(tool any) *ToolChain {
	meta, err := getToolMeta(tool)
	if err != nil {
		panic(fmt.Sprintf("agent: cannot register tool: %v", err))
	}
	if _, dup := c.entries[meta.name]; dup {
		panic(fmt.Sprintf("agent: tool %q already registered", meta.name))
	}

	var compiled *schema.Schema
	if meta.schema != nil {
		compiled, err = schema.Compile(meta.schema)
		if err != nil {
			panic(fmt.Sprintf("agent: tool %q has invalid schema: %v", meta.name, err))
		}
	}

	c.order = append(c.order, meta.name)
	c.entries[meta.name] = &toolEntry{meta: meta, compiled: compiled}
	return c
}

// Names returns the registered tool names in registration order.
func (c *ToolChain) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// CatalogPrompt renders the tool catalog with parameter schemas for the
// system prompt.
func (c *ToolChain) CatalogPrompt() string {
	var sb strings.Builder
	sb.WriteString("Available tools:\n")
	for _, name := range c.order {
		meta := c.entries[name].meta
		fmt.Fprintf(&sb, "\n- %s: %s\n", meta.name, meta.description)
		if meta.schema != nil {
			schemaJSON, err := json.MarshalIndent(meta.schema, "  ", "  ")
			if err == nil {
				sb.WriteString("  Parameters: ")
				sb.Write(schemaJSON)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// Call validates args against the named tool's schema and executes it.
// Errors are phrased for the model: they come back as observations so the
// agent can correct itself or report failure to the user.
func (c *ToolChain) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	entry, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf(
			"unknown tool %q (available: %s)", name, strings.Join(c.order, ", "),
		)
	}
	if err := entry.compiled.Validate(args); err != nil {
		return nil, fmt.Errorf("invalid arguments for %q: %w", name, err)
	}
	input, err := transformArgs(entry.meta.tool, args)
	if err != nil {
		return nil, fmt.Errorf("invalid arguments for %q: %w", name, err)
	}
	return callTool(ctx, entry.meta.tool, input)
}
