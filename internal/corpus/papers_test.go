package corpus

import (
	"context"
	"errors"
	"testing"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

func TestAddPaperRoundTrip(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()

	id, err := store.AddPaper(ctx,
		"Efficient Attention Mechanisms",
		"We study attention.",
		[]string{"Smith, J.", "Doe, A."},
		[]string{"Attention", "efficiency", "attention"},
	)
	if err != nil {
		t.Fatal(err)
	}

	paper, err := store.GetPaper(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	if paper.Title != "Efficient Attention Mechanisms" {
		t.Errorf("Title = %q", paper.Title)
	}
	if paper.Abstract != "We study attention." {
		t.Errorf("Abstract = %q", paper.Abstract)
	}
	if len(paper.Authors) != 2 || paper.Authors[0] != "Smith, J." {
		t.Errorf("Authors = %v, want order preserved with Smith first", paper.Authors)
	}
	// Tags are lowercased and deduplicated.
	if len(paper.Tags) != 2 || paper.Tags[0] != "attention" || paper.Tags[1] != "efficiency" {
		t.Errorf("Tags = %v, want [attention efficiency]", paper.Tags)
	}
	if paper.Status != types.StatusDraft {
		t.Errorf("Status = %q, want draft", paper.Status)
	}
	if paper.Score != nil {
		t.Errorf("Score = %v, want unset", *paper.Score)
	}
	if paper.CreatedAt.IsZero() || paper.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestAddPaperRejectsEmptyTitle(t *testing.T) {
	store := testSetup(t)

	for _, title := range []string{"", "   "} {
		if _, err := store.AddPaper(context.Background(), title, "", nil, nil); !IsValidation(err) {
			t.Errorf("AddPaper(%q) error = %v, want ValidationError", title, err)
		}
	}
}

func TestGetPaperNotFound(t *testing.T) {
	store := testSetup(t)

	_, err := store.GetPaper(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPaperIDsNeverReused(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()

	first := addSamplePaper(t, store, "First")
	if err := store.DeletePaper(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := addSamplePaper(t, store, "Second")
	if second <= first {
		t.Errorf("new id %d not greater than deleted id %d", second, first)
	}
}

func TestUpdateScore(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	id := addSamplePaper(t, store, "Scored Paper")

	tests := []struct {
		name    string
		score   float64
		wantErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 10, false},
		{"mid range", 7.5, false},
		{"negative", -0.1, true},
		{"too high", 10.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.UpdateScore(ctx, id, tt.score)
			if tt.wantErr {
				if !IsValidation(err) {
					t.Fatalf("error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			paper, err := store.GetPaper(ctx, id)
			if err != nil {
				t.Fatal(err)
			}
			if paper.Score == nil || *paper.Score != tt.score {
				t.Errorf("stored score = %v, want %g", paper.Score, tt.score)
			}
		})
	}
}

func TestUpdateScoreRejectedLeavesStoredScore(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	id := addSamplePaper(t, store, "Keeps Score")

	if err := store.UpdateScore(ctx, id, 6.0); err != nil {
		t.Fatal(err)
	}
	if err := store.UpdateScore(ctx, id, 42.0); !IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}

	paper, err := store.GetPaper(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if paper.Score == nil || *paper.Score != 6.0 {
		t.Errorf("score = %v, want 6.0 unchanged after rejected update", paper.Score)
	}
}

func TestUpdateScoreNotFound(t *testing.T) {
	store := testSetup(t)

	err := store.UpdateScore(context.Background(), 999, 5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	id := addSamplePaper(t, store, "Status Paper")

	// Any status can move to any other.
	for _, status := range []types.Status{
		types.StatusPublished, types.StatusArchived, types.StatusDraft, types.StatusActive,
	} {
		if err := store.UpdateStatus(ctx, id, status); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		paper, err := store.GetPaper(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if paper.Status != status {
			t.Errorf("Status = %q, want %q", paper.Status, status)
		}
	}

	if err := store.UpdateStatus(ctx, id, "review"); !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError for invalid status", err)
	}
}

func TestUpdateAdvancesUpdatedAt(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	id := addSamplePaper(t, store, "Touched Paper")

	before, err := store.GetPaper(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.UpdateScore(ctx, id, 3); err != nil {
		t.Fatal(err)
	}

	after, err := store.GetPaper(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("UpdatedAt did not advance: before=%v after=%v", before.UpdatedAt, after.UpdatedAt)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("CreatedAt changed on mutation")
	}
}

func TestDeletePaperCascades(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()
	id := addSamplePaper(t, store, "Doomed Paper")

	if _, err := store.AddHypothesis(ctx, id, "It will be deleted", 0.9); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddHypothesis(ctx, id, "Along with this one", 0.4); err != nil {
		t.Fatal(err)
	}

	if err := store.DeletePaper(ctx, id); err != nil {
		t.Fatal(err)
	}

	if _, err := store.GetPaper(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPaper after delete = %v, want ErrNotFound", err)
	}

	hyps, err := store.ListHypotheses(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(hyps) != 0 {
		t.Errorf("got %d hypotheses after cascade delete, want 0", len(hyps))
	}
}

func TestDeletePaperNotFound(t *testing.T) {
	store := testSetup(t)

	err := store.DeletePaper(context.Background(), 777)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListPapers(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()

	a := addSamplePaper(t, store, "Alpha", "shared", "alpha-only")
	b := addSamplePaper(t, store, "Beta", "shared")
	c := addSamplePaper(t, store, "Gamma")

	if err := store.UpdateStatus(ctx, b, types.StatusPublished); err != nil {
		t.Fatal(err)
	}
	if err := store.UpdateScore(ctx, c, 9); err != nil {
		t.Fatal(err)
	}
	if err := store.UpdateScore(ctx, a, 4); err != nil {
		t.Fatal(err)
	}

	t.Run("default order is created_at ascending", func(t *testing.T) {
		papers, err := store.ListPapers(ctx, types.PaperFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(papers) != 3 {
			t.Fatalf("got %d papers, want 3", len(papers))
		}
		if papers[0].ID != a || papers[1].ID != b || papers[2].ID != c {
			t.Errorf("order = [%d %d %d], want [%d %d %d]",
				papers[0].ID, papers[1].ID, papers[2].ID, a, b, c)
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		papers, err := store.ListPapers(ctx, types.PaperFilter{Status: types.StatusPublished})
		if err != nil {
			t.Fatal(err)
		}
		if len(papers) != 1 || papers[0].ID != b {
			t.Errorf("got %v, want only paper %d", papers, b)
		}
	})

	t.Run("filter by tag is case-insensitive", func(t *testing.T) {
		papers, err := store.ListPapers(ctx, types.PaperFilter{Tag: "SHARED"})
		if err != nil {
			t.Fatal(err)
		}
		if len(papers) != 2 {
			t.Errorf("got %d papers, want 2", len(papers))
		}
	})

	t.Run("filter by min score skips unscored", func(t *testing.T) {
		papers, err := store.ListPapers(ctx, types.PaperFilter{MinScore: 5})
		if err != nil {
			t.Fatal(err)
		}
		if len(papers) != 1 || papers[0].ID != c {
			t.Errorf("got %v, want only paper %d", papers, c)
		}
	})

	t.Run("by score descending", func(t *testing.T) {
		papers, err := store.ListPapers(ctx, types.PaperFilter{ByScore: true, Limit: 2})
		if err != nil {
			t.Fatal(err)
		}
		if len(papers) != 2 {
			t.Fatalf("got %d papers, want 2", len(papers))
		}
		if papers[0].ID != c || papers[1].ID != a {
			t.Errorf("order = [%d %d], want [%d %d]", papers[0].ID, papers[1].ID, c, a)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		if _, err := store.ListPapers(ctx, types.PaperFilter{Status: "bogus"}); !IsValidation(err) {
			t.Errorf("error = %v, want ValidationError", err)
		}
	})
}
