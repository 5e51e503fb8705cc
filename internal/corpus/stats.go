// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// CorpusStats computes aggregate statistics over the whole corpus.
// Every call reads fresh from storage; nothing is cached.
func (s *Store) CorpusStats(ctx context.Context) (*types.Stats, error) {
	stats := &types.Stats{
		ByStatus:  make(map[types.Status]int),
		TagCounts: make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM papers`,
	).Scan(&stats.TotalPapers); err != nil {
		return nil, fmt.Errorf("counting papers: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT status, count(*) FROM papers GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting papers by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		stats.ByStatus[types.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Only explicitly assigned scores enter the average; an unscored
	// paper does not drag it toward zero.
	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*), coalesce(avg(score), 0) FROM papers WHERE score IS NOT NULL`,
	).Scan(&stats.ScoredPapers, &stats.AvgScore); err != nil {
		return nil, fmt.Errorf("averaging scores: %w", err)
	}

	tagRows, err := s.db.QueryContext(ctx,
		`SELECT value, count(*) FROM papers, json_each(papers.tags) GROUP BY value`)
	if err != nil {
		return nil, fmt.Errorf("counting tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var (
			tag string
			n   int
		)
		if err := tagRows.Scan(&tag, &n); err != nil {
			return nil, fmt.Errorf("scanning tag count: %w", err)
		}
		stats.TagCounts[tag] = n
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT count(*), coalesce(avg(confidence), 0) FROM hypotheses`,
	).Scan(&stats.HypothesisCount, &stats.AvgConfidence); err != nil {
		return nil, fmt.Errorf("averaging confidence: %w", err)
	}

	return stats, nil
}
