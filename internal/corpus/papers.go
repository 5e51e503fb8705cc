// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// AddPaper inserts a new paper with status draft and no score. Tags are
// lowercased and deduplicated. Returns the assigned id.
func (s *Store) AddPaper(ctx context.Context, title, abstract string, authors, tags []string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	authorsJSON, err := json.Marshal(nonNil(authors))
	if err != nil {
		return 0, fmt.Errorf("encoding authors: %w", err)
	}
	tagsJSON, err := json.Marshal(normalizeTags(tags))
	if err != nil {
		return 0, fmt.Errorf("encoding tags: %w", err)
	}

	now := time.Now().UTC().Format(timeFormat)

	var id int64
	err = withRetry(ctx, func() error {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO papers (title, abstract, authors, tags, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			title, abstract, string(authorsJSON), string(tagsJSON),
			string(types.StatusDraft), now, now,
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("inserting paper: %w", err)
	}

	return id, nil
}

const paperColumns = `id, title, abstract, authors, tags, status, score, created_at, updated_at`

// GetPaper loads a paper by id. Returns ErrNotFound if absent.
func (s *Store) GetPaper(ctx context.Context, id int64) (*types.Paper, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+paperColumns+` FROM papers WHERE id = ?`, id)

	paper, err := scanPaper(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("paper %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading paper %d: %w", id, err)
	}
	return paper, nil
}

// ListPapers returns papers matching the filter, ordered by created_at
// ascending, or by score descending when filter.ByScore is set.
func (s *Store) ListPapers(ctx context.Context, filter types.PaperFilter) ([]types.Paper, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(`SELECT ` + paperColumns + ` FROM papers WHERE 1=1`)

	if filter.Status != "" {
		if !filter.Status.Valid() {
			return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("%q is not one of %v", filter.Status, types.Statuses)}
		}
		qb.WriteString(` AND status = ?`)
		args = append(args, string(filter.Status))
	}

	if filter.Tag != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(papers.tags) WHERE value = ?)`)
		args = append(args, strings.ToLower(strings.TrimSpace(filter.Tag)))
	}

	if filter.MinScore > 0 {
		qb.WriteString(` AND score IS NOT NULL AND score >= ?`)
		args = append(args, filter.MinScore)
	}

	if filter.ByScore {
		qb.WriteString(` ORDER BY score DESC, created_at ASC`)
	} else {
		qb.WriteString(` ORDER BY created_at ASC, id ASC`)
	}

	if filter.Limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		paper, err := scanPaper(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		papers = append(papers, *paper)
	}
	return papers, rows.Err()
}

// UpdateScore assigns a score in [0, 10]. Out-of-range values are
// rejected, not clamped, and leave the stored score unchanged.
func (s *Store) UpdateScore(ctx context.Context, id int64, score float64) error {
	if score < 0 || score > 10 {
		return &ValidationError{Field: "score", Reason: fmt.Sprintf("%g is outside [0, 10]", score)}
	}
	return s.updatePaper(ctx, id, `UPDATE papers SET score = ?, updated_at = ? WHERE id = ?`, score)
}

// UpdateStatus moves a paper to a new status. Any status may transition
// to any other; only membership in the status enum is enforced.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status types.Status) error {
	if !status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("%q is not one of %v", status, types.Statuses)}
	}
	return s.updatePaper(ctx, id, `UPDATE papers SET status = ?, updated_at = ? WHERE id = ?`, string(status))
}

func (s *Store) updatePaper(ctx context.Context, id int64, query string, value any) error {
	now := time.Now().UTC().Format(timeFormat)
	return withRetry(ctx, func() error {
		res, err := s.db.ExecContext(ctx, query, value, now, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("paper %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// DeletePaper removes a paper and all of its hypotheses in one
// transaction. The search-index triggers remove the FTS entry in the
// same transaction. Returns ErrNotFound if the paper does not exist.
func (s *Store) DeletePaper(ctx context.Context, id int64) error {
	return withRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx, `DELETE FROM hypotheses WHERE paper_id = ?`, id); err != nil {
			return fmt.Errorf("deleting hypotheses of paper %d: %w", id, err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM papers WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("deleting paper %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("paper %d: %w", id, ErrNotFound)
		}

		return tx.Commit()
	})
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// paperRecord is the raw storage shape of a paper row. Explicit mapping
// to and from types.Paper keeps the column order in one place.
type paperRecord struct {
	id          int64
	title       string
	abstract    string
	authorsJSON string
	tagsJSON    string
	status      string
	score       sql.NullFloat64
	createdAt   string
	updatedAt   string
}

func (r *paperRecord) fields() []any {
	return []any{&r.id, &r.title, &r.abstract, &r.authorsJSON, &r.tagsJSON,
		&r.status, &r.score, &r.createdAt, &r.updatedAt}
}

func (r *paperRecord) paper() (*types.Paper, error) {
	p := types.Paper{
		ID:       r.id,
		Title:    r.title,
		Abstract: r.abstract,
		Status:   types.Status(r.status),
	}

	if err := json.Unmarshal([]byte(r.authorsJSON), &p.Authors); err != nil {
		return nil, fmt.Errorf("decoding authors: %w", err)
	}
	if err := json.Unmarshal([]byte(r.tagsJSON), &p.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}

	if r.score.Valid {
		v := r.score.Float64
		p.Score = &v
	}

	var err error
	if p.CreatedAt, err = time.Parse(timeFormat, r.createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(timeFormat, r.updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &p, nil
}

func scanPaper(row scanner) (*types.Paper, error) {
	var rec paperRecord
	if err := row.Scan(rec.fields()...); err != nil {
		return nil, err
	}
	return rec.paper()
}

// normalizeTags lowercases, trims, and deduplicates tags, preserving
// first-occurrence order.
func normalizeTags(tags []string) []string {
	out := []string{}
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
