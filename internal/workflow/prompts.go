package workflow

import "fmt"

func generationPrompt(schemaText, question string) string {
	return fmt.Sprintf(`You are a SQL expert. Generate a DuckDB SQL query based on the user's question.

Database Schema:
%s

Rules:
1. Only use tables and columns from the schema
2. Use DuckDB SQL syntax
3. Return ONLY SQL (no explanation)
4. Ensure SQL is valid

User Question: %s

SQL Query:`, schemaText, question)
}

func correctionPrompt(s *State, schemaText string) string {
	return fmt.Sprintf(`The SQL query failed with this error:
%s

Failed SQL:
%s

Original question: %s

Database Schema:
%s

This is attempt %d of %d.

Return a corrected DuckDB SQL query.
Rules:
1. Use only schema tables/columns
2. Use valid DuckDB SQL
3. Return ONLY SQL
4. Must be SELECT

Corrected SQL Query:`, s.ExecutionError, s.GeneratedSQL, s.UserQuestion, schemaText, s.RetryCount, MaxRetries)
}
