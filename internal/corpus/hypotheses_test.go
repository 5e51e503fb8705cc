package corpus

import (
	"context"
	"errors"
	"testing"
)

func TestAddHypothesis(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	paperID := addSamplePaper(t, store, "Host Paper")

	id, err := store.AddHypothesis(ctx, paperID, "Agents self-organize under pressure", 0.7)
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Error("hypothesis id not assigned")
	}

	hyps, err := store.ListHypotheses(ctx, paperID)
	if err != nil {
		t.Fatal(err)
	}
	if len(hyps) != 1 {
		t.Fatalf("got %d hypotheses, want 1", len(hyps))
	}
	h := hyps[0]
	if h.PaperID != paperID {
		t.Errorf("PaperID = %d, want %d", h.PaperID, paperID)
	}
	if h.Statement != "Agents self-organize under pressure" {
		t.Errorf("Statement = %q", h.Statement)
	}
	if h.Confidence != 0.7 {
		t.Errorf("Confidence = %g, want 0.7", h.Confidence)
	}
	if h.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestAddHypothesisPaperNotFound(t *testing.T) {
	store := testSetup(t)

	_, err := store.AddHypothesis(context.Background(), 999, "Orphan statement", 0.5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestAddHypothesisValidation(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	paperID := addSamplePaper(t, store, "Validated Paper")

	tests := []struct {
		name       string
		statement  string
		confidence float64
	}{
		{"empty statement", "", 0.5},
		{"blank statement", "   ", 0.5},
		{"confidence below range", "ok", -0.01},
		{"confidence above range", "ok", 1.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.AddHypothesis(ctx, paperID, tt.statement, tt.confidence); !IsValidation(err) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}

	// Nothing was written by the rejected inputs.
	hyps, err := store.ListHypotheses(ctx, paperID)
	if err != nil {
		t.Fatal(err)
	}
	if len(hyps) != 0 {
		t.Errorf("got %d hypotheses, want 0 after rejected inputs", len(hyps))
	}
}

func TestListHypothesesOrderedByCreation(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	paperID := addSamplePaper(t, store, "Ordered Paper")

	statements := []string{"first", "second", "third"}
	for _, st := range statements {
		if _, err := store.AddHypothesis(ctx, paperID, st, 0.5); err != nil {
			t.Fatal(err)
		}
	}

	hyps, err := store.ListHypotheses(ctx, paperID)
	if err != nil {
		t.Fatal(err)
	}
	if len(hyps) != 3 {
		t.Fatalf("got %d hypotheses, want 3", len(hyps))
	}
	for i, st := range statements {
		if hyps[i].Statement != st {
			t.Errorf("hyps[%d].Statement = %q, want %q", i, hyps[i].Statement, st)
		}
	}
}

func TestListHypothesesEmptyForPaperWithout(t *testing.T) {
	store := testSetup(t)
	paperID := addSamplePaper(t, store, "Bare Paper")

	hyps, err := store.ListHypotheses(context.Background(), paperID)
	if err != nil {
		t.Fatal(err)
	}
	if len(hyps) != 0 {
		t.Errorf("got %d hypotheses, want 0", len(hyps))
	}
}
