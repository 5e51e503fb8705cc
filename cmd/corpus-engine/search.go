// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search --query <text>",
	Short: "Search the corpus over title, abstract, tags, and authors",
	Long: `Search runs a ranked full-text query against the corpus. When the
full-text index is unavailable a case-insensitive substring match is
used instead; results carry the same shape either way.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out, err := store.Search(context.Background(), query)
	if err != nil {
		return err
	}

	fmt.Printf("\nSearch: %q  -  %d results", query, len(out.Results))
	if out.Fallback {
		fmt.Printf("  (substring fallback)")
	}
	fmt.Println()

	for _, r := range out.Results {
		fmt.Printf("  [%.2f] %s\n", r.Relevance, r.Paper.Title)
		if len(r.Paper.Tags) > 0 {
			fmt.Printf("         tags: %s\n", strings.Join(r.Paper.Tags, ", "))
		}
	}
	fmt.Println()
	return nil
}

func init() {
	searchCmd.Flags().String("query", "", "search query (required)")
	searchCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(searchCmd)
}
