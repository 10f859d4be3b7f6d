package agent

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// ModelCallRecord describes one model generation inside a run.
type ModelCallRecord struct {
	RunID        string
	Iteration    int
	Model        string
	InputTokens  int
	OutputTokens int
	Duration     time.Duration
	Err          error
}

// ToolCallRecord describes one tool execution inside a run.
type ToolCallRecord struct {
	RunID     string
	Iteration int
	Tool      string
	Args      map[string]any
	Output    any
	Duration  time.Duration
	Err       error
}

// Sink receives trace records for every model and tool call the loop makes.
// Sinks are pure observers: they must not mutate records, and the loop's
// behavior does not depend on what a sink does with them.
type Sink interface {
	RecordModelCall(rec ModelCallRecord)
	RecordToolCall(rec ToolCallRecord)
}

// ZapSink logs trace records as structured entries.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a Sink writing to the given logger.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// RecordModelCall implements Sink.
func (s *ZapSink) RecordModelCall(rec ModelCallRecord) {
	fields := []zap.Field{
		zap.String("run_id", rec.RunID),
		zap.Int("iteration", rec.Iteration),
		zap.String("model", rec.Model),
		zap.Int("input_tokens", rec.InputTokens),
		zap.Int("output_tokens", rec.OutputTokens),
		zap.Duration("duration", rec.Duration),
	}
	if rec.Err != nil {
		fields = append(fields, zap.Error(rec.Err))
		s.log.Warn("model call failed", fields...)
		return
	}
	s.log.Info("model call", fields...)
}

// RecordToolCall implements Sink.
func (s *ZapSink) RecordToolCall(rec ToolCallRecord) {
	fields := []zap.Field{
		zap.String("run_id", rec.RunID),
		zap.Int("iteration", rec.Iteration),
		zap.String("tool", rec.Tool),
		zap.Any("args", rec.Args),
		zap.Duration("duration", rec.Duration),
	}
	if rec.Err != nil {
		fields = append(fields, zap.Error(rec.Err))
		s.log.Warn("tool call failed", fields...)
		return
	}
	fields = append(fields, zap.Any("output", rec.Output))
	s.log.Info("tool call", fields...)
}

// MemorySink collects trace records in memory, for tests.
type MemorySink struct {
	mu         sync.Mutex
	modelCalls []ModelCallRecord
	toolCalls  []ToolCallRecord
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink { return &MemorySink{} }

// RecordModelCall implements Sink.
func (s *MemorySink) RecordModelCall(rec ModelCallRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelCalls = append(s.modelCalls, rec)
}

// RecordToolCall implements Sink.
func (s *MemorySink) RecordToolCall(rec ToolCallRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toolCalls = append(s.toolCalls, rec)
}

// ModelCalls returns a copy of the recorded model calls.
func (s *MemorySink) ModelCalls() []ModelCallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ModelCallRecord, len(s.modelCalls))
	copy(out, s.modelCalls)
	return out
}

// ToolCalls returns a copy of the recorded tool calls.
func (s *MemorySink) ToolCalls() []ToolCallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ToolCallRecord, len(s.toolCalls))
	copy(out, s.toolCalls)
	return out
}

var _ Sink = (*ZapSink)(nil)
var _ Sink = (*MemorySink)(nil)
