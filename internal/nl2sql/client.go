// Package nl2sql wraps the language-model completion call used to generate
// and correct SQL, plus the sanitizer for model output.
package nl2sql

import "context"

// Client is the single-call completion contract: prompt text in, response
// text out.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
