package workflow

// Response is the caller-facing projection of a terminal state. The field
// set is stable regardless of outcome.
type Response struct {
	Question        string           `json:"question"`
	SQL             string           `json:"sql"`
	Results         string           `json:"results"`
	RawResults      []map[string]any `json:"raw_results"`
	Rows            int              `json:"rows"`
	ExecutionTime   float64          `json:"execution_time"`
	ValidationError string           `json:"validation_error"`
	ExecutionError  string           `json:"execution_error"`
	Error           string           `json:"error"`
	RetryCount      int              `json:"retry_count"`
	Success         bool             `json:"success"`
}

// BuildResponse projects a terminal state. Success is derived from the
// absence of failure signals, not from a flag any node sets.
func BuildResponse(s *State) Response {
	raw := s.RawResults
	if raw == nil {
		raw = []map[string]any{}
	}
	return Response{
		Question:        s.UserQuestion,
		SQL:             s.GeneratedSQL,
		Results:         s.FormattedResults,
		RawResults:      raw,
		Rows:            s.RowsAffected,
		ExecutionTime:   s.ExecutionTime.Seconds(),
		ValidationError: s.ValidationError,
		ExecutionError:  s.ExecutionError,
		Error:           s.Error,
		RetryCount:      s.RetryCount,
		Success:         s.ValidationError == "" && s.ExecutionError == "" && s.Error == "",
	}
}
