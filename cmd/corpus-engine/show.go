// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a paper's full details including its hypotheses",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid paper id %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	paper, err := store.GetPaper(ctx, id)
	if err != nil {
		return err
	}
	hyps, err := store.ListHypotheses(ctx, id)
	if err != nil {
		return err
	}

	score := "unset"
	if paper.Score != nil {
		score = fmt.Sprintf("%.1f", *paper.Score)
	}

	abstract := paper.Abstract
	if len(abstract) > 200 {
		abstract = abstract[:200] + "..."
	}

	fmt.Printf("\nTitle    : %s\n", paper.Title)
	fmt.Printf("Status   : %s  Score: %s\n", paper.Status, score)
	fmt.Printf("Authors  : %s\n", strings.Join(paper.Authors, ", "))
	fmt.Printf("Tags     : %s\n", strings.Join(paper.Tags, ", "))
	fmt.Printf("Created  : %s\n", paper.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Abstract : %s\n", abstract)

	if len(hyps) > 0 {
		fmt.Printf("\nHypotheses (%d):\n", len(hyps))
		for _, h := range hyps {
			statement := h.Statement
			if len(statement) > 70 {
				statement = statement[:70]
			}
			fmt.Printf("  [%d] conf=%.2f  %s\n", h.ID, h.Confidence, statement)
		}
	}
	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
