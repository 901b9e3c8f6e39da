// Command routerdemo walks through the router's main features: smart
// routing, agent coordination, cost comparison, and (when API keys are
// configured) a live routed chat completion.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"multi-llm-router/internal/telemetry"
	"multi-llm-router/pkg/llmrouter"
)

var (
	strategy = flag.String("strategy", "balanced", "Routing strategy (cost_optimized, quality_optimized, balanced)")
	live     = flag.Bool("live", false, "Run the live API demo (requires provider API keys)")
	tracing  = flag.Bool("tracing", false, "Emit OpenTelemetry traces to stderr")
)

func main() {
	flag.Parse()

	// Load provider keys from .env when present.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if *tracing {
		// Spans go to stderr so the demo output stays readable.
		shutdown, err := telemetry.InitTracer("routerdemo", logger, telemetry.WithWriter(os.Stderr))
		if err != nil {
			logger.Error("failed to initialize tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
			}
		}()
	}

	router, err := llmrouter.New(
		llmrouter.WithStrategy(llmrouter.Strategy(*strategy)),
		llmrouter.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	demoSmartRouting(router)
	demoAgentCoordination(router)
	demoCostComparison(router)
	if *live {
		demoLiveChat(router)
	}
}

var (
	heading = color.New(color.FgGreen, color.Bold).SprintFunc()
	accent  = color.New(color.FgCyan, color.Bold).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

func banner(title string) {
	fmt.Println()
	fmt.Println(heading(title))
	fmt.Println(dim("============================================================"))
}

func userMessage(content string) []llmrouter.Message {
	return []llmrouter.Message{{Role: llmrouter.RoleUser, Content: content}}
}

func demoSmartRouting(router *llmrouter.Router) {
	banner("Smart routing")

	queries := []string{
		// Low complexity
		"Hola",
		"What's the price?",
		// Medium complexity
		"Explain how your service works",
		"What is the difference between both options?",
		// High complexity
		"Analyze our current marketing strategy and compare it with industry best practices for B2B SaaS companies",
		"I need a detailed financial projection for the next 5 years considering market trends",
	}

	for _, q := range queries {
		messages := userMessage(q)
		complexity := router.GetComplexity(messages)
		decision := router.SelectModel(messages, llmrouter.Routing{})

		display := q
		if len(display) > 50 {
			display = display[:50] + "..."
		}
		fmt.Printf("%q\n", display)
		fmt.Printf("  complexity: %-6s -> %s\n", complexity,
			accent(decision.Provider+"/"+decision.Model))
	}
}

func demoAgentCoordination(router *llmrouter.Router) {
	banner("Agent coordination")

	queries := []string{
		"Hola, buenos días!",
		"How much does the pro plan cost?",
		"The widget is not loading",
		"What features are included?",
		"Tell me about quantum physics",
		"I want to upgrade my account",
		"Help me configure the integration",
	}

	for _, q := range queries {
		category := router.ClassifyIntent(llmrouter.NewContext(userMessage(q)), nil)
		info := llmrouter.InfoFor(category)
		fmt.Printf("%q\n  -> %s %s\n", q, accent(string(category)), dim("("+info.Description+")"))
	}
}

func demoCostComparison(router *llmrouter.Router) {
	banner("Cost comparison")

	models := []string{"gpt-4o", "gpt-4o-mini", "claude-sonnet-4-20250514", "gemini-1.5-flash"}
	const tokensInput, tokensOutput = 1000, 500

	fmt.Printf("Workload: %d input + %d output tokens\n\n", tokensInput, tokensOutput)

	costs := router.CompareModels(models, tokensInput, tokensOutput)

	sorted := make([]string, 0, len(costs))
	for model := range costs {
		sorted = append(sorted, model)
	}
	sort.Slice(sorted, func(i, j int) bool { return costs[sorted[i]] < costs[sorted[j]] })

	for _, model := range sorted {
		fmt.Printf("  %-30s %12s\n", model, llmrouter.FormatCost(costs[model]))
	}

	cheapest := costs[sorted[0]]
	mostExpensive := costs[sorted[len(sorted)-1]]
	savings := (mostExpensive - cheapest) / mostExpensive * 100
	fmt.Printf("\nSavings with smart routing: up to %.0f%%\n", savings)
}

func demoLiveChat(router *llmrouter.Router) {
	banner("Live routed chat")

	if os.Getenv("OPENAI_API_KEY") == "" {
		fmt.Println("OPENAI_API_KEY not set, skipping live demo")
		return
	}

	messages := []llmrouter.Message{
		{Role: llmrouter.RoleSystem, Content: "You are a helpful assistant. Be concise."},
		{Role: llmrouter.RoleUser, Content: "What is Go in one sentence?"},
	}

	result, err := router.Chat(context.Background(), messages, llmrouter.ChatOptions{
		MaxTokens: 100,
	})
	if err != nil {
		fmt.Printf("chat failed: %v\n", err)
		return
	}

	fmt.Printf("Routed to: %s\n", accent(result.Provider+"/"+result.Model))
	fmt.Printf("Response:  %s\n", result.Text)
	fmt.Printf("Tokens:    %d\n", result.TokensUsed)
	fmt.Printf("Cost:      %s\n", llmrouter.FormatCost(result.Cost))
}
