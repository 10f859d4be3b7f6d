// Command skydesk is an interactive airline customer-service agent. It
// reads user requests from the terminal, lets the configured language model
// drive the booking tools, and prints the agent's answer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"skydesk/internal/agent"
	"skydesk/internal/booking"
	"skydesk/internal/config"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

const rolePrompt = `You are an airline customer service agent that helps
users book and manage flights.

You are given a set of tools to handle user requests, and you should decide
the right tools to use in order to fulfill each request. Resolve the user
with get_user_info before booking or cancelling anything. Summarize the
outcome for the user, including any confirmation number a new booking
produced. If the request is something the tools cannot handle, file a
support ticket and let the user know.`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	traceLog, err := newTraceLogger(cfg.LogDir)
	if err != nil {
		return err
	}
	defer traceLog.Sync()

	model, err := agent.NewOpenAIModel(cfg.Model, cfg.OpenAIAPIKey)
	if err != nil {
		return err
	}

	store := booking.NewStore()
	tools := agent.NewToolChain()
	booking.NewToolSet(store).RegisterAll(tools)

	loop := agent.NewLoop(model, tools).
		WithRolePrompt(rolePrompt).
		WithMaxIterations(cfg.MaxIterations).
		WithSink(agent.NewZapSink(traceLog))

	log.Info("agent ready",
		zap.String("model", cfg.Model),
		zap.Int("max_iterations", cfg.MaxIterations),
		zap.Strings("tools", tools.Names()),
	)

	rl, err := readline.New(colorCyan + "User: " + colorReset)
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()

	fmt.Printf("%s%s=== Skydesk Airline Customer Service ===%s\n",
		colorBold, colorYellow, colorReset)
	fmt.Println("Type your request, or 'exit' to leave.")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Printf("\n%sGoodbye!%s\n", colorGreen, colorReset)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		request := strings.TrimSpace(line)
		if request == "" {
			continue
		}
		if isFarewell(request) {
			fmt.Printf("%sThank you for using our service. Goodbye!%s\n",
				colorGreen, colorReset)
			return nil
		}

		answer, err := runRequest(loop, request)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Printf("%sRequest cancelled.%s\n", colorYellow, colorReset)
				continue
			}
			log.Warn("request failed", zap.Error(err))
			fmt.Printf("%sSorry, something went wrong: %v%s\n",
				colorRed, err, colorReset)
			continue
		}
		fmt.Printf("%sAgent:%s %s\n\n", colorBold, colorReset, answer)
	}
}

// runRequest runs one agent loop, cancelling it on SIGINT/SIGTERM.
func runRequest(loop *agent.Loop, request string) (string, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return loop.Run(ctx, request)
}

func isFarewell(request string) bool {
	switch strings.ToLower(request) {
	case "exit", "quit", "bye":
		return true
	}
	return false
}

// newTraceLogger builds the JSON logger the trace sink writes to.
func newTraceLogger(logDir string) (*zap.Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{filepath.Join(logDir, "skydesk_trace.log")}
	zapCfg.ErrorOutputPaths = zapCfg.OutputPaths
	traceLog, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("create trace logger: %w", err)
	}
	return traceLog, nil
}
