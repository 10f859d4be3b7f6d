package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// ErrMaxIterationsExceeded is returned when a run does not reach a final
// answer within the configured iteration budget.
var ErrMaxIterationsExceeded = errors.New("agent: maximum iterations exceeded")

// DefaultMaxIterations bounds a run when no explicit limit is configured.
const DefaultMaxIterations = 10

// Decision is the single JSON object the model must answer with on every
// turn: either a tool invocation (Tool + Args) or a FinalAnswer.
type Decision struct {
	Thought     string         `json:"thought,omitempty"`
	Tool        string         `json:"tool,omitempty"`
	Args        map[string]any `json:"args,omitempty"`
	FinalAnswer string         `json:"final_answer,omitempty"`
}

// Loop drives the think → act → observe cycle: prompt the model with the
// tool catalog, parse its decision, execute the chosen tool, feed the
// observation back, and repeat until the model produces a final answer or
// the iteration budget runs out.
type Loop struct {
	model         Model
	modelName     string
	tools         *ToolChain
	rolePrompt    string
	maxIterations int
	clock         Clock
	sink          Sink
}

// NewLoop creates a Loop over the given model and tools with defaults:
// DefaultMaxIterations, the system clock, and no trace sink.
func NewLoop(model Model, tools *ToolChain) *Loop {
	l := &Loop{
		model:         model,
		tools:         tools,
		maxIterations: DefaultMaxIterations,
		clock:         NewSystemClock(),
	}
	if named, ok := model.(interface{ Name() string }); ok {
		l.modelName = named.Name()
	}
	return l
}

// WithRolePrompt sets the task description placed at the top of the system
// prompt. Returns the loop for chaining.
func (l *Loop) WithRolePrompt(prompt string) *Loop {
	l.rolePrompt = prompt
	return l
}

// WithMaxIterations sets the iteration budget. Values below one are
// ignored. Returns the loop for chaining.
func (l *Loop) WithMaxIterations(n int) *Loop {
	if n >= 1 {
		l.maxIterations = n
	}
	return l
}

// WithClock sets the clock used for the "Today is ..." line. Returns the
// loop for chaining.
func (l *Loop) WithClock(clock Clock) *Loop {
	l.clock = clock
	return l
}

// WithSink sets the trace sink. Returns the loop for chaining.
func (l *Loop) WithSink(sink Sink) *Loop {
	l.sink = sink
	return l
}

// Run processes one user request to completion and returns the agent's
// final answer. Tool failures are not fatal: they are fed back to the model
// as observations so it can retry, pick another tool, or explain the
// failure to the user.
func (l *Loop) Run(ctx context.Context, userRequest string) (string, error) {
	runID := uuid.NewString()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, l.systemPrompt()),
		llms.TextParts(llms.ChatMessageTypeHuman, userRequest),
	}

	for iteration := 1; iteration <= l.maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		resp, err := l.model.GenerateContent(ctx, messages)
		l.recordModelCall(runID, iteration, resp, err)
		if err != nil {
			return "", fmt.Errorf("model call failed: %w", err)
		}

		messages = append(messages,
			llms.TextParts(llms.ChatMessageTypeAI, resp.Content))

		decision, err := ParseDecision(resp.Content)
		if err != nil {
			messages = append(messages, observation(fmt.Sprintf(
				"Your response could not be parsed: %v. Reply with exactly "+
					"one JSON object as instructed.", err)))
			continue
		}

		if decision.FinalAnswer != "" {
			return decision.FinalAnswer, nil
		}

		start := time.Now()
		output, err := l.tools.Call(ctx, decision.Tool, decision.Args)
		l.recordToolCall(runID, iteration, decision, output, time.Since(start), err)
		if err != nil {
			messages = append(messages, observation(
				fmt.Sprintf("Tool %q failed: %v", decision.Tool, err)))
			continue
		}

		outputJSON, err := json.Marshal(output)
		if err != nil {
			return "", fmt.Errorf("tool %q produced unserializable output: %w",
				decision.Tool, err)
		}
		messages = append(messages, observation(string(outputJSON)))
	}

	return "", fmt.Errorf("%w: no final answer after %d iterations",
		ErrMaxIterationsExceeded, l.maxIterations)
}

// observation wraps tool output (or an error report) as the next human turn.
func observation(content string) llms.MessageContent {
	return llms.TextParts(llms.ChatMessageTypeHuman, "Observation: "+content)
}

func (l *Loop) systemPrompt() string {
	var sb strings.Builder
	if l.rolePrompt != "" {
		sb.WriteString(strings.TrimSpace(l.rolePrompt))
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "Today is %s (%s).\n\n", l.clock.Today(), l.clock.Weekday())
	sb.WriteString(l.tools.CatalogPrompt())
	sb.WriteString(`
Respond with exactly one JSON object per turn, nothing else.

To call a tool:
{"thought": "why this tool", "tool": "tool_name", "args": {...}}

When you have everything you need, finish with:
{"thought": "wrap up", "final_answer": "message for the customer"}

Every claim in your final answer must come from tool outputs or the
customer's own words. Never invent flight ids, prices, times, or
confirmation numbers. If a request is outside what the tools can do, file a
support ticket and tell the customer.`)
	return sb.String()
}

// ParseDecision extracts the model's JSON decision from raw output,
// tolerating surrounding prose and Markdown code fences.
func ParseDecision(content string) (*Decision, error) {
	content = strings.TrimSpace(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object found")
	}

	var decision Decision
	if err := json.Unmarshal([]byte(content[start:end+1]), &decision); err != nil {
		return nil, fmt.Errorf("invalid JSON: %v", err)
	}
	if decision.Tool == "" && decision.FinalAnswer == "" {
		return nil, errors.New(`decision needs either "tool" or "final_answer"`)
	}
	if decision.Tool != "" && decision.FinalAnswer != "" {
		return nil, errors.New(`decision cannot have both "tool" and "final_answer"`)
	}
	return &decision, nil
}

func (l *Loop) recordModelCall(runID string, iteration int, resp *Response, err error) {
	if l.sink == nil {
		return
	}
	rec := ModelCallRecord{
		RunID:     runID,
		Iteration: iteration,
		Model:     l.modelName,
		Err:       err,
	}
	if resp != nil {
		rec.InputTokens = resp.InputTokens
		rec.OutputTokens = resp.OutputTokens
		rec.Duration = resp.Duration
	}
	l.sink.RecordModelCall(rec)
}

func (l *Loop) recordToolCall(
	runID string,
	iteration int,
	decision *Decision,
	output any,
	duration time.Duration,
	err error,
) {
	if l.sink == nil {
		return
	}
	l.sink.RecordToolCall(ToolCallRecord{
		RunID:     runID,
		Iteration: iteration,
		Tool:      decision.Tool,
		Args:      decision.Args,
		Output:    output,
		Duration:  duration,
		Err:       err,
	})
}
