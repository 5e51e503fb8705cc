// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CorpusConfig holds settings for the corpus store.
type CorpusConfig struct {
	// DBPath is the SQLite database file location
	// (default ~/.corpus-engine/corpus.db).
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
