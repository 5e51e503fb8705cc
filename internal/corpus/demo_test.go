package corpus

import (
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

func TestRunDemo(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()

	var buf strings.Builder
	if err := store.RunDemo(ctx, &buf); err != nil {
		t.Fatal(err)
	}

	stats, err := store.CorpusStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalPapers != len(demoPapers) {
		t.Errorf("TotalPapers = %d, want %d", stats.TotalPapers, len(demoPapers))
	}
	if stats.ByStatus[types.StatusPublished] != len(demoPapers) {
		t.Errorf("published count = %d, want %d (demo publishes everything)",
			stats.ByStatus[types.StatusPublished], len(demoPapers))
	}
	if stats.HypothesisCount != 5 {
		t.Errorf("HypothesisCount = %d, want 5", stats.HypothesisCount)
	}
	if stats.ScoredPapers != len(demoPapers) {
		t.Errorf("ScoredPapers = %d, want %d", stats.ScoredPapers, len(demoPapers))
	}

	output := buf.String()
	for _, want := range []string{"Corpus statistics", "Search 'emergence'", "Top papers"} {
		if !strings.Contains(output, want) {
			t.Errorf("demo output missing %q:\n%s", want, output)
		}
	}
}

func TestRunDemoSearchFindsSeededPapers(t *testing.T) {
	store := testSetup(t)
	ctx := context.Background()

	var buf strings.Builder
	if err := store.RunDemo(ctx, &buf); err != nil {
		t.Fatal(err)
	}

	out, err := store.Search(ctx, "emergence")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) < 3 {
		t.Errorf("got %d results for 'emergence', want >= 3 from seed corpus", len(out.Results))
	}
}
