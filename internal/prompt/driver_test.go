package prompt

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestSurveyDriverStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	d := NewSurveyDriver(&out)

	if _, err := d.Input(ctx, TextConfig{Message: "Full Name"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Input: %v", err)
	}
	if _, err := d.Choose(ctx, ChoiceConfig{Message: "Type", Options: []string{"a", "b"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Choose: %v", err)
	}
	if _, err := d.Checklist(ctx, ChecklistConfig{Message: "Concerns", Options: []string{"a"}, Selected: []int{0}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Checklist: %v", err)
	}
	if err := d.Info(ctx, "hello"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Info: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed after cancel, got %q", out.String())
	}
}

func TestSurveyDriverInfoWritesLine(t *testing.T) {
	var out bytes.Buffer
	if err := NewSurveyDriver(&out).Info(context.Background(), "STEP 1: YOUR DETAILS"); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "STEP 1: YOUR DETAILS\n" {
		t.Fatalf("info output = %q", got)
	}
}
