// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the corpus to YAML or JSON",
	Long: `Export writes the full corpus (papers with their hypotheses) to a
file. Supports the same filter flags as list for partial exports.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	status, _ := cmd.Flags().GetString("status")
	tag, _ := cmd.Flags().GetString("tag")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	filter := types.PaperFilter{
		Status: types.Status(status),
		Tag:    tag,
	}

	switch format {
	case "yaml", "":
		if out == "" {
			out = "corpus-export.yaml"
		}
		if err := store.ExportYAML(context.Background(), filter, out); err != nil {
			return err
		}
	case "json":
		if out == "" {
			out = "corpus-export.json"
		}
		if err := store.ExportJSON(context.Background(), filter, out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported to %s\n", out)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output file (default: corpus-export.<format>)")
	exportCmd.Flags().String("status", "", "filter by status for partial export")
	exportCmd.Flags().String("tag", "", "filter by tag for partial export")

	rootCmd.AddCommand(exportCmd)
}
