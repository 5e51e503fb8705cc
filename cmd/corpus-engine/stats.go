// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate corpus statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.CorpusStats(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("\nCorpus statistics\n\n")
		fmt.Printf("  %-20s %d\n", "total_papers", stats.TotalPapers)
		for _, status := range types.Statuses {
			if n, ok := stats.ByStatus[status]; ok {
				fmt.Printf("  %-20s %d\n", "status:"+string(status), n)
			}
		}
		fmt.Printf("  %-20s %d\n", "scored_papers", stats.ScoredPapers)
		fmt.Printf("  %-20s %.2f\n", "avg_score", stats.AvgScore)
		fmt.Printf("  %-20s %d\n", "hypotheses", stats.HypothesisCount)
		fmt.Printf("  %-20s %.3f\n", "avg_confidence", stats.AvgConfidence)

		tags := make([]string, 0, len(stats.TagCounts))
		for tag := range stats.TagCounts {
			tags = append(tags, tag)
		}
		sort.Slice(tags, func(i, j int) bool {
			if stats.TagCounts[tags[i]] != stats.TagCounts[tags[j]] {
				return stats.TagCounts[tags[i]] > stats.TagCounts[tags[j]]
			}
			return tags[i] < tags[j]
		})
		for i, tag := range tags {
			if i >= 10 {
				break
			}
			fmt.Printf("  %-20s %d\n", "tag:"+tag, stats.TagCounts[tag])
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
