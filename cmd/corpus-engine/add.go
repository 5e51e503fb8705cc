// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add papers and hypotheses to the corpus",
}

// --- paper subcommand ---

var addPaperCmd = &cobra.Command{
	Use:   "paper --title <text>",
	Short: "Add a paper",
	RunE:  runAddPaper,
}

func runAddPaper(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	abstract, _ := cmd.Flags().GetString("abstract")
	authors, _ := cmd.Flags().GetStringArray("author")
	tags, _ := cmd.Flags().GetStringArray("tag")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.AddPaper(context.Background(), title, abstract, authors, tags)
	if err != nil {
		return err
	}
	fmt.Printf("Added paper %d\n", id)
	return nil
}

// --- hypothesis subcommand ---

var addHypothesisCmd = &cobra.Command{
	Use:   "hypothesis --paper <id> --statement <text>",
	Short: "Add a hypothesis to an existing paper",
	RunE:  runAddHypothesis,
}

func runAddHypothesis(cmd *cobra.Command, args []string) error {
	paperID, _ := cmd.Flags().GetInt64("paper")
	statement, _ := cmd.Flags().GetString("statement")
	confidence, _ := cmd.Flags().GetFloat64("confidence")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.AddHypothesis(context.Background(), paperID, statement, confidence)
	if err != nil {
		return err
	}
	fmt.Printf("Added hypothesis %d to paper %d\n", id, paperID)
	return nil
}

func init() {
	addPaperCmd.Flags().String("title", "", "paper title (required)")
	addPaperCmd.Flags().String("abstract", "", "abstract text")
	addPaperCmd.Flags().StringArray("author", nil, "author name (repeatable, first is primary)")
	addPaperCmd.Flags().StringArray("tag", nil, "classification tag (repeatable)")
	addPaperCmd.MarkFlagRequired("title")

	addHypothesisCmd.Flags().Int64("paper", 0, "paper id (required)")
	addHypothesisCmd.Flags().String("statement", "", "hypothesis statement (required)")
	addHypothesisCmd.Flags().Float64("confidence", 0.5, "confidence in [0, 1]")
	addHypothesisCmd.MarkFlagRequired("paper")
	addHypothesisCmd.MarkFlagRequired("statement")

	addCmd.AddCommand(addPaperCmd)
	addCmd.AddCommand(addHypothesisCmd)
	rootCmd.AddCommand(addCmd)
}
