package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/askql/askql/internal/config"
	"github.com/askql/askql/internal/nl2sql"
	"github.com/askql/askql/internal/observability"
	duckdbstore "github.com/askql/askql/internal/query/duckdb"
	"github.com/askql/askql/internal/schema"
	"github.com/askql/askql/internal/workflow"
)

var demoQuestions = []string{
	"How many customers are there?",
	"Show me the top 5 most expensive products",
	"List all customers from New York",
	"What is the total revenue from all orders?",
	"Show customer names with their total spending",
}

func main() {
	cfg, err := config.LoadFromEnv("askql-demo")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if cfg.AI.APIKey == "" {
		fmt.Fprintln(os.Stderr, "ASKQL_AI_API_KEY is required")
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stderr)

	ctx := context.Background()
	tables, err := schema.Load(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema load error: %v\n", err)
		os.Exit(1)
	}

	llm, err := nl2sql.NewOpenAIClient(nl2sql.OpenAIConfig{
		BaseURL:     cfg.AI.BaseURL,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "model client error: %v\n", err)
		os.Exit(1)
	}

	store := duckdbstore.NewStore(cfg.Database.Path)
	runner := workflow.New(llm, store, schema.Render(tables), logger)

	for _, question := range demoQuestions {
		response := runner.Run(ctx, question)

		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Printf("Question: %s\n", question)
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("Success: %t\n", response.Success)
		fmt.Printf("SQL: %s\n", response.SQL)

		if response.Success {
			fmt.Println(response.Results)
			continue
		}
		if response.ValidationError != "" {
			fmt.Printf("Validation Error: %s\n", response.ValidationError)
		}
		if response.ExecutionError != "" {
			fmt.Printf("Execution Error: %s\n", response.ExecutionError)
		}
		if response.Error != "" {
			fmt.Printf("Error: %s\n", response.Error)
		}
	}
}
