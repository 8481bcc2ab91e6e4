package commands

import (
	"errors"
	"testing"

	"taskboard/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent tomorrow", TypeAdd},
		{"search milk", TypeSearch},
		{"/done t-12", TypeDone},
		{"priority t-12 1", TypePriority},
		{"/delete t-9", TypeDelete},
		{"clear", TypeClear},
		{"/summary", TypeSummary},
		{"reload", TypeReload},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParsePriorityArguments(t *testing.T) {
	cmd, err := Parse("/priority t-3 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Priority.TaskID != "t-3" || cmd.Priority.Priority != model.PriorityMedium {
		t.Fatalf("unexpected args: %+v", cmd.Priority)
	}

	for _, in := range []string{"/priority t-3", "/priority t-3 4", "/priority t-3 high"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument error, got %v", in, err)
		}
	}
}

func TestParseSearchAllowsEmptyTerm(t *testing.T) {
	cmd, err := Parse("/search")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Search.Term != "" {
		t.Fatalf("expected empty term to clear the filter, got %q", cmd.Search.Term)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Description != "write docs" {
				t.Fatalf("unexpected description: %q", a.Description)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("clear")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
