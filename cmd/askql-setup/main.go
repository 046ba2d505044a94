package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/askql/askql/internal/config"
	"github.com/askql/askql/internal/observability"
	"github.com/askql/askql/internal/schema"
	"github.com/askql/askql/internal/seed"
)

func main() {
	seedValue := flag.Int64("seed", 42, "random seed for generated sample data")
	flag.Parse()

	cfg, err := config.LoadFromEnv("askql-setup")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	tables, err := schema.Load(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema load error: %v\n", err)
		os.Exit(1)
	}

	path := cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create database directory: %v\n", err)
		os.Exit(1)
	}
	// A stale file would make the CREATE TABLE statements fail, so start fresh.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "remove existing database: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database open error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := seed.Run(ctx, db, tables, *seedValue, logger); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sample database created at %s\n", path)
}
