// Package workflow implements the bounded query-resolution pipeline:
// generate SQL from a question, validate it, execute it, and feed execution
// failures back to the model for correction, up to MaxRetries attempts.
package workflow

import (
	"time"

	"github.com/google/uuid"
)

// MaxRetries bounds the correction loop.
const MaxRetries = 3

// Correction is one entry of the append-only correction audit trail.
type Correction struct {
	Attempt      int    `json:"attempt"`
	Error        string `json:"error"`
	OriginalSQL  string `json:"original_sql"`
	CorrectedSQL string `json:"corrected_sql"`
}

// State is the single record threaded through every node. One instance per
// question; never shared across runs.
type State struct {
	RunID             string
	UserQuestion      string
	GeneratedSQL      string
	Error             string
	IsValid           bool
	ValidationError   string
	ExecutionError    string
	Columns           []string
	RawResults        []map[string]any
	RowsAffected      int
	ExecutionTime     time.Duration
	RetryCount        int
	CorrectionHistory []Correction
	FormattedResults  string
}

func NewState(question string) *State {
	return &State{
		RunID:        uuid.NewString(),
		UserQuestion: question,
	}
}

// Node is the enumerated state tag of the pipeline state machine.
type Node string

const (
	NodeGenerate Node = "generate_sql"
	NodeValidate Node = "validate_sql"
	NodeExecute  Node = "execute_query"
	NodeCorrect  Node = "correct_sql"
	NodeFormat   Node = "format_results"
	NodeEnd      Node = "end"
)

// Transition is the pure routing function evaluated after each node runs.
func Transition(node Node, s *State) Node {
	switch node {
	case NodeGenerate:
		return NodeValidate
	case NodeValidate:
		if s.ValidationError != "" {
			return NodeEnd
		}
		return NodeExecute
	case NodeExecute:
		if s.ExecutionError == "" {
			return NodeFormat
		}
		if s.RetryCount < MaxRetries {
			return NodeCorrect
		}
		return NodeEnd
	case NodeCorrect:
		return NodeExecute
	case NodeFormat:
		return NodeEnd
	default:
		return NodeEnd
	}
}

// Outcome names the terminal cause of a finished run.
func Outcome(s *State) string {
	switch {
	case s.Error != "":
		return "internal_error"
	case s.ValidationError != "":
		return "invalid"
	case s.ExecutionError != "":
		return "max_retries"
	default:
		return "success"
	}
}
