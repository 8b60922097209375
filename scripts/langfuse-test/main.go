// Script to test Langfuse connectivity by creating a test trace and, when
// LANGFUSE_PROMPT_NAME is set, fetching the insights prompt.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/health-insights/internal/config"
	"github.com/blaisecz/health-insights/internal/langfuse"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.LangfuseBaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.LangfusePublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.LangfuseSecretKey))
	fmt.Printf("Environment: %s\n", cfg.LangfuseEnv)
	fmt.Println()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, logger)

	if !client.IsEnabled() {
		log.Fatal("Langfuse client is disabled. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		Name: "test-trace",
		Input: map[string]any{
			"message": "Hello from langfuse-test script",
			"time":    time.Now().Format(time.RFC3339),
		},
		Output: map[string]any{"status": "success"},
		Tags:   []string{"test", "manual"},
	})
	if err != nil {
		log.Fatalf("Failed to create trace: %v", err)
	}
	if err := client.CreateScore(ctx, langfuse.ScoreInput{TraceID: traceID, Name: "connectivity", Value: 1}); err != nil {
		log.Fatalf("Failed to create score: %v", err)
	}
	if f, ok := client.(interface{ Flush() }); ok {
		f.Flush()
	}

	fmt.Println("✓ Test trace sent (ingestion errors, if any, are logged above)")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.LangfuseBaseURL, traceID)

	if cfg.LangfusePromptName == "" {
		return
	}
	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to load prompt %q: %v", cfg.LangfusePromptName, err)
	}
	fmt.Printf("✓ Prompt %q (%s) loaded, %d characters\n", cfg.LangfusePromptName, cfg.LangfusePromptLabel, len(prompt))
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
