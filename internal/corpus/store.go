// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus persists research papers and hypotheses in SQLite and
// serves full-text search and aggregate statistics over them.
package corpus

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/corpus-engine/pkg/types"
)

const (
	defaultDBDir      = ".corpus-engine"
	defaultDBFile     = "corpus.db"
	defaultMaxResults = 20
)

// timeFormat is the storage representation of timestamps.
const timeFormat = time.RFC3339Nano

// Store manages the corpus SQLite database. All mutations run as one
// committed transaction per call; reads run concurrently under WAL.
type Store struct {
	db         *sql.DB
	path       string
	maxResults int

	// ftsAvailable records whether the FTS5 index could be created.
	// When false, Search uses the substring fallback path.
	ftsAvailable bool

	primary  textSearcher
	fallback textSearcher

	logw io.Writer
}

// NewStore opens or creates the corpus database at cfg.DBPath (default
// ~/.corpus-engine/corpus.db) and ensures the schema exists. Opening is
// idempotent and never loses data. The connection bounds lock waits via
// the busy_timeout pragma so no call blocks indefinitely.
func NewStore(cfg types.CorpusConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, defaultDBDir, defaultDBFile)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		path:       path,
		maxResults: maxResults,
		logw:       os.Stderr,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema in %s: %w", path, err)
	}

	s.primary = ftsSearcher{db}
	s.fallback = scanSearcher{db}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetLogWriter redirects warning output (default os.Stderr).
func (s *Store) SetLogWriter(w io.Writer) {
	s.logw = w
}
