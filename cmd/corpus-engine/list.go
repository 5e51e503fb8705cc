// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List papers in the corpus",
	Long: `List prints the papers in the corpus, ordered by creation time.
Use --status, --tag, and --min-score to filter, and --by-score to
order by score descending instead.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	tag, _ := cmd.Flags().GetString("tag")
	minScore, _ := cmd.Flags().GetFloat64("min-score")
	limit, _ := cmd.Flags().GetInt("limit")
	byScore, _ := cmd.Flags().GetBool("by-score")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.ListPapers(context.Background(), types.PaperFilter{
		Status:   types.Status(status),
		Tag:      tag,
		MinScore: minScore,
		Limit:    limit,
		ByScore:  byScore,
	})
	if err != nil {
		return err
	}

	if len(papers) == 0 {
		fmt.Println("No papers found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-6s  %-10s  %s\n", "ID", "Score", "Status", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 78))
	for _, p := range papers {
		score := "-"
		if p.Score != nil {
			score = fmt.Sprintf("%.1f", *p.Score)
		}
		title := p.Title
		if len(title) > 55 {
			title = title[:52] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-6s  %-10s  %s\n", p.ID, score, p.Status, title)
	}
	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(papers))
	return nil
}

func init() {
	listCmd.Flags().String("status", "", "filter by status: draft, active, published, archived")
	listCmd.Flags().String("tag", "", "filter by tag")
	listCmd.Flags().Float64("min-score", 0, "keep only papers scored at least this high")
	listCmd.Flags().Int("limit", 0, "maximum papers to list (0 = all)")
	listCmd.Flags().Bool("by-score", false, "order by score descending")

	rootCmd.AddCommand(listCmd)
}
