package model

import (
	"errors"
	"testing"
	"time"
)

func TestPriorityLabels(t *testing.T) {
	cases := []struct {
		priority Priority
		want     string
	}{
		{PriorityHigh, "High"},
		{PriorityMedium, "Medium"},
		{PriorityLow, "Low"},
		{Priority(0), "Unknown"},
		{Priority(7), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.priority.Label(); got != tc.want {
			t.Fatalf("Label(%d) = %q, want %q", tc.priority, got, tc.want)
		}
	}
}

func TestPriorityIsValid(t *testing.T) {
	for p := Priority(-1); p <= 4; p++ {
		want := p >= PriorityHigh && p <= PriorityLow
		if p.IsValid() != want {
			t.Fatalf("IsValid(%d) = %v, want %v", p, p.IsValid(), want)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription("Buy milk"); err != nil {
		t.Fatalf("expected valid description, got: %v", err)
	}
	if err := ValidateDescription("  "); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got: %v", err)
	}
	if err := ValidateDescription(""); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got: %v", err)
	}
}

func TestDisplayCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Work", "Work"},
		{"Health", "Health"},
		{"", Uncategorized},
		{"Gardening", Uncategorized},
	}
	for _, tc := range cases {
		if got := DisplayCategory(tc.in); got != tc.want {
			t.Fatalf("DisplayCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryColorFallback(t *testing.T) {
	if CategoryColor("Work") == CategoryColor("Gardening") {
		t.Fatal("expected known category color to differ from fallback")
	}
	if CategoryColor("Gardening") != CategoryColor("") {
		t.Fatal("expected unknown and absent categories to share the fallback color")
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if (Task{Deadline: &past}).Overdue(now) != true {
		t.Fatal("expected past deadline to be overdue")
	}
	if (Task{Deadline: &future}).Overdue(now) {
		t.Fatal("expected future deadline to not be overdue")
	}
	if (Task{Deadline: &past, Completed: true}).Overdue(now) {
		t.Fatal("expected completed task to not be overdue")
	}
	if (Task{}).Overdue(now) {
		t.Fatal("expected task without deadline to not be overdue")
	}
}
