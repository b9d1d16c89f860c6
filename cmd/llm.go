package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanazen/internal/llm"
	"github.com/abhisek/kanazen/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveLLMConfig(loadFileConfig())
		if err != nil {
			fmt.Println("No LLM provider configured.")
			fmt.Println()
			fmt.Println("Set one of KANAZEN_GEMINI_API_KEY, KANAZEN_ANTHROPIC_API_KEY,")
			fmt.Println("or KANAZEN_OPENAI_API_KEY, or a standard *_API_KEY variable.")
			return nil
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Printf("Model:     %s\n", cfg.Gemini.Model)
		case "anthropic":
			fmt.Printf("Model:     %s\n", cfg.Anthropic.Model)
		case "openai":
			fmt.Printf("Model:     %s\n", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", cfg.OpenAI.BaseURL)
			}
		}
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d\n", cfg.Retry.MaxAttempts)
		return nil
	},
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run a one-shot test generation against the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveLLMConfig(loadFileConfig())
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := llm.WithPurpose(context.Background(), "llm-probe")
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		fmt.Printf("Probing %s (%s)...\n", cfg.Provider, provider.ModelID())
		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			System: "You answer questions about Japanese kana in JSON.",
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: "What is the romaji reading of あ?"},
			},
			Schema: &llm.Schema{
				Name:        "kana-reading",
				Description: "A single romaji reading",
				Definition: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"reading": map[string]any{"type": "string"},
					},
					"required":             []string{"reading"},
					"additionalProperties": false,
				},
			},
			MaxTokens:   64,
			Temperature: 0,
		})
		if err != nil {
			return fmt.Errorf("probe failed: %w", err)
		}

		fmt.Printf("OK in %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Response:  %s\n", strings.TrimSpace(string(resp.Content)))
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM request events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo().RecentLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-6d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	llmCmd.AddCommand(llmProbeCmd)
	llmCmd.AddCommand(llmListCmd)
}
