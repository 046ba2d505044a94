package workflow

import "testing"

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name  string
		node  Node
		state State
		want  Node
	}{
		{name: "generate always validates", node: NodeGenerate, want: NodeValidate},
		{name: "valid sql executes", node: NodeValidate, want: NodeExecute},
		{name: "invalid sql terminates", node: NodeValidate, state: State{ValidationError: "No SQL generated"}, want: NodeEnd},
		{name: "clean execution formats", node: NodeExecute, want: NodeFormat},
		{name: "execution failure retries", node: NodeExecute, state: State{ExecutionError: "boom", RetryCount: 0}, want: NodeCorrect},
		{name: "execution failure below bound retries", node: NodeExecute, state: State{ExecutionError: "boom", RetryCount: MaxRetries - 1}, want: NodeCorrect},
		{name: "exhausted retries terminate", node: NodeExecute, state: State{ExecutionError: "boom", RetryCount: MaxRetries}, want: NodeEnd},
		{name: "correct loops to execute", node: NodeCorrect, want: NodeExecute},
		{name: "format terminates", node: NodeFormat, want: NodeEnd},
		{name: "end is absorbing", node: NodeEnd, want: NodeEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			if got := Transition(tt.node, &state); got != tt.want {
				t.Fatalf("Transition(%s) = %s, want %s", tt.node, got, tt.want)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{name: "success", state: State{}, want: "success"},
		{name: "internal error wins", state: State{Error: "SQL generation failed: x", ValidationError: "No SQL generated"}, want: "internal_error"},
		{name: "invalid", state: State{ValidationError: "Only SELECT queries are allowed for safety"}, want: "invalid"},
		{name: "max retries", state: State{ExecutionError: "boom", RetryCount: MaxRetries}, want: "max_retries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			if got := Outcome(&state); got != tt.want {
				t.Fatalf("Outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewStateAssignsRunID(t *testing.T) {
	a := NewState("How many customers are there?")
	b := NewState("How many customers are there?")
	if a.RunID == "" || a.RunID == b.RunID {
		t.Fatalf("run ids = %q, %q", a.RunID, b.RunID)
	}
	if a.UserQuestion != "How many customers are there?" {
		t.Fatalf("UserQuestion = %q", a.UserQuestion)
	}
}
