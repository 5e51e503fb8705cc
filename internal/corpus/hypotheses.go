// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// AddHypothesis registers a hypothesis for an existing paper. The paper
// existence check and the insert run in one transaction so the foreign
// reference cannot dangle. Returns ErrNotFound for an unknown paper and
// a ValidationError for an empty statement or confidence outside [0, 1].
func (s *Store) AddHypothesis(ctx context.Context, paperID int64, statement string, confidence float64) (int64, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return 0, &ValidationError{Field: "statement", Reason: "must not be empty"}
	}
	if confidence < 0 || confidence > 1 {
		return 0, &ValidationError{Field: "confidence", Reason: fmt.Sprintf("%g is outside [0, 1]", confidence)}
	}

	now := time.Now().UTC().Format(timeFormat)

	var id int64
	err := withRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer tx.Rollback()

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM papers WHERE id = ?`, paperID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("checking paper %d: %w", paperID, err)
		}
		if exists == 0 {
			return fmt.Errorf("paper %d: %w", paperID, ErrNotFound)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO hypotheses (paper_id, statement, confidence, created_at)
			 VALUES (?, ?, ?, ?)`,
			paperID, statement, confidence, now,
		)
		if err != nil {
			return fmt.Errorf("inserting hypothesis: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ListHypotheses returns the hypotheses of a paper ordered by
// created_at ascending. An existing paper with no hypotheses yields an
// empty slice, not an error.
func (s *Store) ListHypotheses(ctx context.Context, paperID int64) ([]types.Hypothesis, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, paper_id, statement, confidence, created_at
		 FROM hypotheses WHERE paper_id = ?
		 ORDER BY created_at ASC, id ASC`, paperID)
	if err != nil {
		return nil, fmt.Errorf("listing hypotheses of paper %d: %w", paperID, err)
	}
	defer rows.Close()

	var hyps []types.Hypothesis
	for rows.Next() {
		var (
			h         types.Hypothesis
			createdAt string
		)
		if err := rows.Scan(&h.ID, &h.PaperID, &h.Statement, &h.Confidence, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning hypothesis row: %w", err)
		}
		if h.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		hyps = append(hyps, h)
	}
	return hyps, rows.Err()
}
