// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

type demoHypothesis struct {
	statement  string
	confidence float64
}

type demoPaper struct {
	title      string
	abstract   string
	authors    []string
	tags       []string
	score      float64
	hypotheses []demoHypothesis
}

// demoPapers is the built-in seed corpus.
var demoPapers = []demoPaper{
	{
		title: "Contradiction Amplification in Multi-Agent Systems",
		abstract: "We study how contradictions in distributed agent beliefs " +
			"propagate and amplify across network topologies, proposing " +
			"K(t) = C(t) * e^(lambda|delta_t|) as a model for emergence dynamics.",
		authors: []string{"A. Blackroad", "L. Core"},
		tags:    []string{"multi-agent", "contradiction", "emergence", "ps-sha"},
		score:   9.2,
		hypotheses: []demoHypothesis{
			{"Contradiction amplification follows exponential growth", 0.8},
			{"Agent belief divergence stabilizes under quorum mechanisms", 0.6},
		},
	},
	{
		title: "PS-SHA Infinity: Persistent Hash-Chain Memory for AI Agents",
		abstract: "We introduce PS-SHA Infinity, an append-only journal scheme with " +
			"cryptographic chaining for tamper-evident agent memory, " +
			"enabling cross-session identity persistence.",
		authors: []string{"C. Ellis", "A. Blackroad"},
		tags:    []string{"memory", "cryptography", "identity", "ps-sha"},
		score:   8.7,
		hypotheses: []demoHypothesis{
			{"Hash-chain journals are computationally indistinguishable from tamper-free logs", 0.9},
		},
	},
	{
		title: "Trinary Logic for Epistemic Uncertainty in AI",
		abstract: "We extend classical binary logic with a third truth value " +
			"(0 = unknown) enabling agents to reason under uncertainty " +
			"without collapsing to arbitrary defaults.",
		authors: []string{"L. Core"},
		tags:    []string{"logic", "uncertainty", "reasoning", "trinary"},
		score:   7.9,
		hypotheses: []demoHypothesis{
			{"Trinary reasoning reduces hallucination in LLM pipelines", 0.65},
			{"Unknown-state quarantine outperforms random tie-breaking", 0.75},
		},
	},
	{
		title: "World Artifact Generation via Agent Collaboration",
		abstract: "Collaborative agent systems can generate coherent world " +
			"artifacts (maps, histories, economies) through iterated " +
			"negotiation and contradiction resolution.",
		authors: []string{"A. Blackroad", "C. Ellis", "L. Core"},
		tags:    []string{"world-gen", "multi-agent", "collaboration", "emergence"},
		score:   8.1,
	},
	{
		title: "Emergence Patterns in Large-Scale Agent Networks",
		abstract: "Statistical analysis of 30,000 concurrent agent simulations " +
			"reveals phase-transition emergence at critical connectivity " +
			"thresholds consistent with percolation theory.",
		authors: []string{"D. Research"},
		tags:    []string{"emergence", "statistical", "multi-agent", "scale"},
		score:   8.5,
	},
}

// RunDemo seeds the built-in corpus, publishes and scores each paper,
// and prints a summary: corpus statistics, a sample search, and the top
// papers by score.
func (s *Store) RunDemo(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "\nResearch corpus demo\n\n")

	for _, p := range demoPapers {
		id, err := s.AddPaper(ctx, p.title, p.abstract, p.authors, p.tags)
		if err != nil {
			return fmt.Errorf("seeding %q: %w", p.title, err)
		}
		if err := s.UpdateScore(ctx, id, p.score); err != nil {
			return err
		}
		if err := s.UpdateStatus(ctx, id, types.StatusPublished); err != nil {
			return err
		}
		for _, h := range p.hypotheses {
			if _, err := s.AddHypothesis(ctx, id, h.statement, h.confidence); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "  + %-60s score=%.1f\n", truncate(p.title, 60), p.score)
	}

	stats, err := s.CorpusStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nCorpus statistics:\n")
	fmt.Fprintf(w, "  Papers     : %d\n", stats.TotalPapers)
	fmt.Fprintf(w, "  Hypotheses : %d\n", stats.HypothesisCount)
	fmt.Fprintf(w, "  Avg score  : %.2f\n", stats.AvgScore)
	fmt.Fprintf(w, "  Top tags   : %s\n", topTags(stats.TagCounts, 5))

	out, err := s.Search(ctx, "emergence")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nSearch 'emergence':\n")
	for i, r := range out.Results {
		if i >= 3 {
			break
		}
		fmt.Fprintf(w, "  [%.1f] %s\n", scoreOf(r.Paper), truncate(r.Paper.Title, 60))
	}

	top, err := s.ListPapers(ctx, types.PaperFilter{ByScore: true, Limit: 3})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTop papers:\n")
	for _, p := range top {
		fmt.Fprintf(w, "  [%.1f] %s\n", scoreOf(p), truncate(p.Title, 60))
	}
	fmt.Fprintln(w)

	return nil
}

func scoreOf(p types.Paper) float64 {
	if p.Score == nil {
		return 0
	}
	return *p.Score
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// topTags formats the n most frequent tags as "tag(count), ...".
func topTags(counts map[string]int, n int) string {
	type tc struct {
		tag string
		n   int
	}
	sorted := make([]tc, 0, len(counts))
	for tag, count := range counts {
		sorted = append(sorted, tc{tag, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].n != sorted[j].n {
			return sorted[i].n > sorted[j].n
		}
		return sorted[i].tag < sorted[j].tag
	})

	out := ""
	for i, t := range sorted {
		if i >= n {
			break
		}
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s(%d)", t.tag, t.n)
	}
	return out
}
