package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skydesk/internal/schema"
)

type greetInput struct {
	Name  string `json:"name"`
	Times int    `json:"times"`
}

type greetOutput struct {
	Greeting string `json:"greeting"`
}

func greetTool() *ToolFunc[greetInput, greetOutput] {
	return NewToolFunc(
		"greet",
		"Greets someone by name.",
		schema.Object(map[string]*schema.Property{
			"name":  schema.String("Who to greet."),
			"times": schema.Integer("How many exclamation marks."),
		}, "name"),
		func(ctx context.Context, input greetInput) (greetOutput, error) {
			return greetOutput{
				Greeting: "Hello, " + input.Name + strings.Repeat("!", input.Times),
			}, nil
		},
	)
}

func pingTool() *ToolFunc[struct{}, string] {
	return NewToolFunc(
		"ping",
		"Replies with pong.",
		nil,
		func(ctx context.Context, _ struct{}) (string, error) {
			return "pong", nil
		},
	)
}

func TestToolChain_NamesFollowRegistrationOrder(t *testing.T) {
	chain := NewToolChain().Register(greetTool()).Register(pingTool())
	assert.Equal(t, []string{"greet", "ping"}, chain.Names())
}

func TestToolChain_RegisterPanics(t *testing.T) {
	assert.Panics(t, func() { NewToolChain().Register(nil) })
	assert.Panics(t, func() { NewToolChain().Register("not a tool") })
	assert.Panics(t, func() {
		NewToolChain().Register(greetTool()).Register(greetTool())
	})
}

func TestToolChain_CatalogPrompt(t *testing.T) {
	prompt := NewToolChain().Register(greetTool()).Register(pingTool()).CatalogPrompt()

	assert.Contains(t, prompt, "- greet: Greets someone by name.")
	assert.Contains(t, prompt, "- ping: Replies with pong.")
	assert.Contains(t, prompt, `"required"`)
	// Schema-less tools render without a parameters block.
	pingSection := prompt[strings.Index(prompt, "- ping"):]
	assert.NotContains(t, pingSection, "Parameters:")
}

func TestToolChain_Call(t *testing.T) {
	chain := NewToolChain().Register(greetTool())

	// JSON numbers arrive as float64; the round-trip lands them in the
	// tool's int field.
	output, err := chain.Call(context.Background(), "greet",
		map[string]any{"name": "Ada", "times": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, greetOutput{Greeting: "Hello, Ada!!"}, output)
}

func TestToolChain_CallUnknownToolListsAvailable(t *testing.T) {
	chain := NewToolChain().Register(greetTool()).Register(pingTool())

	_, err := chain.Call(context.Background(), "shout", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "shout"`)
	assert.Contains(t, err.Error(), "greet, ping")
}

func TestToolChain_CallRejectsInvalidArguments(t *testing.T) {
	chain := NewToolChain().Register(greetTool())

	_, err := chain.Call(context.Background(), "greet",
		map[string]any{"times": float64(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid arguments for "greet"`)

	var verr *schema.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestToolChain_SchemalessToolAcceptsAnything(t *testing.T) {
	chain := NewToolChain().Register(pingTool())

	output, err := chain.Call(context.Background(), "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "pong", output)

	output, err = chain.Call(context.Background(), "ping",
		map[string]any{"unexpected": true})
	require.NoError(t, err)
	assert.Equal(t, "pong", output)
}
