// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

// SearchResult pairs a paper with its relevance for a query. Higher
// relevance ranks first.
type SearchResult struct {
	Paper     types.Paper
	Relevance float64
}

// SearchOutput is a ranked result set. Fallback reports whether the
// substring path produced it; callers never need to branch on it, but
// it makes the ranking source observable.
type SearchOutput struct {
	Results  []SearchResult
	Fallback bool
}

// textSearcher is one search strategy. Two implementations exist: the
// FTS5 index path and the substring fallback.
type textSearcher interface {
	search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// Search runs a ranked full-text query over title, abstract, tags, and
// authors. The FTS5 index path is used when available; on index absence
// or any index error (including queries that are invalid FTS5 syntax)
// the substring fallback runs instead, so every query gets a result
// set. An empty query returns an empty result set. Results are capped
// at the configured MaxResults.
func (s *Store) Search(ctx context.Context, query string) (SearchOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchOutput{}, nil
	}

	if s.ftsAvailable {
		results, err := s.primary.search(ctx, query, s.maxResults)
		if err == nil {
			return SearchOutput{Results: results}, nil
		}
		fmt.Fprintf(s.logw, "warning: full-text query failed, using substring fallback: %v\n", err)
	}

	results, err := s.fallback.search(ctx, query, s.maxResults)
	if err != nil {
		return SearchOutput{}, fmt.Errorf("fallback search: %w", err)
	}
	return SearchOutput{Results: results, Fallback: true}, nil
}

// ftsSearcher queries the papers_fts index. Relevance is the negated
// bm25 rank so that higher is better; ties break on created_at
// descending.
type ftsSearcher struct {
	db *sql.DB
}

func (f ftsSearcher) search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	rows, err := f.db.QueryContext(ctx,
		`SELECT p.id, p.title, p.abstract, p.authors, p.tags, p.status,
			p.score, p.created_at, p.updated_at, bm25(papers_fts) AS rank
		 FROM papers_fts
		 JOIN papers p ON p.id = papers_fts.rowid
		 WHERE papers_fts MATCH ?
		 ORDER BY rank ASC, p.created_at DESC
		 LIMIT ?`,
		ftsQuery(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			rec  paperRecord
			rank float64
		)
		if err := rows.Scan(append(rec.fields(), &rank)...); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		paper, err := rec.paper()
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{Paper: *paper, Relevance: -rank})
	}
	return results, rows.Err()
}

// ftsQuery rewrites a raw query into quoted prefix terms, so "hash"
// matches "hashing" and user input cannot inject FTS5 operators.
func ftsQuery(query string) string {
	terms := strings.Fields(query)
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = `"` + strings.ReplaceAll(term, `"`, `""`) + `"*`
	}
	return strings.Join(parts, " ")
}

// scanSearcher is the always-available fallback: a case-insensitive
// substring match against title, abstract, joined tags, and joined
// authors. Relevance is the number of fields containing the query;
// ties break on created_at descending, matching the index path.
type scanSearcher struct {
	db *sql.DB
}

func (c scanSearcher) search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+paperColumns+` FROM papers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	needle := strings.ToLower(query)

	var results []SearchResult
	for rows.Next() {
		paper, err := scanPaper(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}

		fields := []string{
			paper.Title,
			paper.Abstract,
			strings.Join(paper.Tags, " "),
			strings.Join(paper.Authors, " "),
		}
		matched := 0
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), needle) {
				matched++
			}
		}
		if matched > 0 {
			results = append(results, SearchResult{Paper: *paper, Relevance: float64(matched)})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows arrive newest-first, so a stable sort on relevance keeps
	// the created_at descending tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
