package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Model is the loop's view of a language model: one content generation with
// normalized token usage.
type Model interface {
	GenerateContent(
		ctx context.Context,
		messages []llms.MessageContent,
		options ...llms.CallOption,
	) (*Response, error)
}

// Response is a normalized model response.
type Response struct {
	// Content is the textual content of the first choice.
	Content string

	// StopReason is the provider's stop reason, when reported.
	StopReason string

	// InputTokens and OutputTokens are normalized across providers; zero
	// when the provider reports no usage.
	InputTokens  int
	OutputTokens int

	// Duration is how long the generation took.
	Duration time.Duration
}

// LangChainModel wraps a LangChainGo llms.Model as an agent Model,
// normalizing the provider-specific token usage keys.
type LangChainModel struct {
	model llms.Model
	name  string
}

// NewLangChainModel wraps the given llms.Model.
func NewLangChainModel(model llms.Model) *LangChainModel {
	return &LangChainModel{model: model}
}

// WithName sets the model name used in trace records. Returns the model for
// chaining.
func (m *LangChainModel) WithName(name string) *LangChainModel {
	m.name = name
	return m
}

// Name returns the model name, if set.
func (m *LangChainModel) Name() string { return m.name }

// GenerateContent implements Model.
func (m *LangChainModel) GenerateContent(
	ctx context.Context,
	messages []llms.MessageContent,
	options ...llms.CallOption,
) (*Response, error) {
	start := time.Now()
	resp, err := m.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	choice := resp.Choices[0]
	out := &Response{
		Content:    choice.Content,
		StopReason: choice.StopReason,
		Duration:   time.Since(start),
	}
	out.InputTokens, out.OutputTokens = normalizeUsage(choice.GenerationInfo)
	return out, nil
}

// normalizeUsage extracts token counts from a provider GenerationInfo map.
// Providers disagree on key names; OpenAI reports PromptTokens and
// CompletionTokens, Anthropic-style providers report input_tokens and
// output_tokens.
func normalizeUsage(info map[string]any) (input, output int) {
	input = usageInt(info, "PromptTokens", "InputTokens", "input_tokens", "prompt_tokens")
	output = usageInt(info, "CompletionTokens", "OutputTokens", "output_tokens", "completion_tokens")
	return input, output
}

func usageInt(info map[string]any, keys ...string) int {
	for _, key := range keys {
		switch v := info[key].(type) {
		case int:
			if v != 0 {
				return v
			}
		case float64:
			if v != 0 {
				return int(v)
			}
		}
	}
	return 0
}

// NewOpenAIModel creates a LangChainModel backed by the OpenAI chat
// completions API. Additional openai.Option values can customize the client
// (e.g. openai.WithBaseURL for compatible providers).
func NewOpenAIModel(model, apiKey string, opts ...openai.Option) (*LangChainModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	baseOpts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	llm, err := openai.New(append(baseOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return NewLangChainModel(llm).WithName(model), nil
}
