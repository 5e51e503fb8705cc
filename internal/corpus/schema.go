// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
)

// schemaVersion is stamped into PRAGMA user_version so future schema
// changes can detect old files instead of silently misreading them.
const schemaVersion = 1

func (s *Store) createSchema() error {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}

	statements := []string{
		// AUTOINCREMENT keeps ids monotonic and never reused, even
		// after deletion.
		`CREATE TABLE IF NOT EXISTS papers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			abstract TEXT NOT NULL DEFAULT '',
			authors TEXT NOT NULL DEFAULT '[]',
			tags TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'draft',
			score REAL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS hypotheses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_id INTEGER NOT NULL REFERENCES papers(id) ON DELETE CASCADE,
			statement TEXT NOT NULL,
			confidence REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_status ON papers(status)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_created ON papers(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_hyp_paper ON hypotheses(paper_id)`,
		fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion),
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return s.createSearchIndex()
}

// createSearchIndex builds the FTS5 virtual table and the triggers that
// keep it in sync with the papers table on every insert, update, and
// delete. If FTS5 is unavailable the store records that and search
// falls back to substring scanning instead of failing.
func (s *Store) createSearchIndex() error {
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='papers_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists > 0 {
		s.ftsAvailable = true
		return nil
	}

	ftsStatements := []string{
		`CREATE VIRTUAL TABLE papers_fts USING fts5(
			title, abstract, tags, authors,
			content='papers', content_rowid='id'
		)`,
		`CREATE TRIGGER papers_ai AFTER INSERT ON papers BEGIN
			INSERT INTO papers_fts(rowid, title, abstract, tags, authors)
			VALUES (new.id, new.title, new.abstract, new.tags, new.authors);
		END`,
		`CREATE TRIGGER papers_ad AFTER DELETE ON papers BEGIN
			INSERT INTO papers_fts(papers_fts, rowid, title, abstract, tags, authors)
			VALUES ('delete', old.id, old.title, old.abstract, old.tags, old.authors);
		END`,
		`CREATE TRIGGER papers_au AFTER UPDATE ON papers BEGIN
			INSERT INTO papers_fts(papers_fts, rowid, title, abstract, tags, authors)
			VALUES ('delete', old.id, old.title, old.abstract, old.tags, old.authors);
			INSERT INTO papers_fts(rowid, title, abstract, tags, authors)
			VALUES (new.id, new.title, new.abstract, new.tags, new.authors);
		END`,
	}

	for _, stmt := range ftsStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			fmt.Fprintf(s.logw, "warning: full-text index unavailable, search will use substring fallback: %v\n", err)
			s.ftsAvailable = false
			return nil
		}
	}

	s.ftsAvailable = true
	return nil
}
