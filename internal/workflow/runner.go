package workflow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/askql/askql/internal/nl2sql"
	"github.com/askql/askql/internal/observability"
	"github.com/askql/askql/internal/query"
)

// Runner orchestrates one question through the pipeline. Configuration is
// fixed at construction and immutable for the runner's lifetime; each Run
// gets its own State and the store opens a scoped connection per node, so a
// slow completion call never holds a database handle.
type Runner struct {
	llm        nl2sql.Client
	store      query.Store
	schemaText string
	log        *slog.Logger
}

func New(llm nl2sql.Client, store query.Store, schemaText string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		llm:        llm,
		store:      store,
		schemaText: schemaText,
		log:        logger,
	}
}

// Run resolves a question and projects the terminal state into a Response.
func (r *Runner) Run(ctx context.Context, question string) Response {
	return BuildResponse(r.RunState(ctx, question))
}

// RunState resolves a question and returns the full terminal state,
// including the correction history.
func (r *Runner) RunState(ctx context.Context, question string) *State {
	s := NewState(question)
	log := r.log.With(slog.String("run_id", s.RunID))

	node := NodeGenerate
	for node != NodeEnd {
		r.runNode(ctx, node, s)
		next := Transition(node, s)
		log.DebugContext(ctx, "node_complete",
			slog.String("node", string(node)),
			slog.String("next", string(next)),
			slog.Int("retry_count", s.RetryCount),
		)
		node = next
	}

	outcome := Outcome(s)
	observability.ObserveQuestionResolved(outcome, s.RetryCount, s.ExecutionTime)
	log.InfoContext(ctx, "question_resolved",
		slog.String("outcome", outcome),
		slog.Int("rows", s.RowsAffected),
		slog.Int("retry_count", s.RetryCount),
		slog.String("execution_time", s.ExecutionTime.String()),
	)
	return s
}

func (r *Runner) runNode(ctx context.Context, node Node, s *State) {
	switch node {
	case NodeGenerate:
		r.generateSQL(ctx, s)
	case NodeValidate:
		r.validateSQL(ctx, s)
	case NodeExecute:
		r.executeQuery(ctx, s)
	case NodeCorrect:
		r.correctSQL(ctx, s)
	case NodeFormat:
		formatResults(s)
	}
}

func (r *Runner) generateSQL(ctx context.Context, s *State) {
	response, err := r.llm.Complete(ctx, generationPrompt(r.schemaText, s.UserQuestion))
	if err != nil {
		s.Error = "SQL generation failed: " + err.Error()
		return
	}
	s.GeneratedSQL = nl2sql.CleanSQL(response)
}

func (r *Runner) validateSQL(ctx context.Context, s *State) {
	sqlText := strings.TrimSpace(s.GeneratedSQL)
	if sqlText == "" {
		s.ValidationError = "No SQL generated"
		return
	}
	// Hard safety boundary: nothing that can mutate state passes this gate.
	if !strings.HasPrefix(strings.ToUpper(sqlText), "SELECT") {
		s.ValidationError = "Only SELECT queries are allowed for safety"
		return
	}

	if err := r.store.Explain(ctx, sqlText); err != nil {
		if errors.Is(err, query.ErrConnection) {
			s.ValidationError = "Validation failed: " + err.Error()
		} else {
			s.ValidationError = "SQL syntax error: " + err.Error()
		}
		return
	}
	s.IsValid = true
}

func (r *Runner) executeQuery(ctx context.Context, s *State) {
	s.ExecutionError = ""
	result, err := r.store.Execute(ctx, s.GeneratedSQL)
	if err != nil {
		s.ExecutionError = err.Error()
		return
	}

	rows := make([]map[string]any, 0, len(result.Rows))
	for _, values := range result.Rows {
		row := make(map[string]any, len(result.Columns))
		for i, column := range result.Columns {
			row[column] = values[i]
		}
		rows = append(rows, row)
	}

	s.Columns = result.Columns
	s.RawResults = rows
	s.RowsAffected = len(rows)
	s.ExecutionTime = result.Duration
}

func (r *Runner) correctSQL(ctx context.Context, s *State) {
	// Incremented first so the attempt number shown to the model and stored
	// in history is 1-indexed for the current cycle.
	s.RetryCount++

	response, err := r.llm.Complete(ctx, correctionPrompt(s, r.schemaText))
	if err != nil {
		s.Error = "SQL correction failed: " + err.Error()
		return
	}
	corrected := nl2sql.CleanSQL(response)

	s.CorrectionHistory = append(s.CorrectionHistory, Correction{
		Attempt:      s.RetryCount,
		Error:        s.ExecutionError,
		OriginalSQL:  s.GeneratedSQL,
		CorrectedSQL: corrected,
	})
	s.GeneratedSQL = corrected
	s.ExecutionError = ""
}
