// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed a small built-in corpus and print a summary",
	Long: `Demo adds five built-in papers with authors, tags, scores, and
hypotheses, then prints corpus statistics, a sample search, and the
top papers by score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		return store.RunDemo(context.Background(), os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
