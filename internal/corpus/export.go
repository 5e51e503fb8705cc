// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// ExportEntry holds a paper with its hypotheses for export.
type ExportEntry struct {
	types.Paper `yaml:",inline"`
	Hypotheses  []types.Hypothesis `json:"hypotheses,omitempty" yaml:"hypotheses,omitempty"`
}

// ExportYAML writes the corpus (or the filtered subset) to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, filter types.PaperFilter, path string) error {
	entries, err := s.exportEntries(ctx, filter)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the corpus (or the filtered subset) to path as JSON.
func (s *Store) ExportJSON(ctx context.Context, filter types.PaperFilter, path string) error {
	entries, err := s.exportEntries(ctx, filter)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, filter types.PaperFilter) ([]ExportEntry, error) {
	papers, err := s.ListPapers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(papers))
	for i, p := range papers {
		hyps, err := s.ListHypotheses(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		entries[i] = ExportEntry{Paper: p, Hypotheses: hyps}
	}
	return entries, nil
}
