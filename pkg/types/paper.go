// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records of the corpus: papers,
// hypotheses, filters, and aggregate statistics.
package types

import "time"

// Status is the lifecycle state of a paper.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Statuses lists all valid paper statuses.
var Statuses = []Status{StatusDraft, StatusActive, StatusPublished, StatusArchived}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Paper is a research paper or experiment report entry in the corpus.
type Paper struct {
	// ID is a monotonically assigned integer identifier, never reused.
	ID int64 `json:"id" yaml:"id"`

	// Title is the paper title. Always non-empty.
	Title string `json:"title" yaml:"title"`

	// Abstract is the abstract or summary text. May be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists author names in source order; the first author is primary.
	Authors []string `json:"authors" yaml:"authors"`

	// Tags are lowercase, deduplicated classification tags.
	Tags []string `json:"tags" yaml:"tags"`

	// Status is the lifecycle state.
	Status Status `json:"status" yaml:"status"`

	// Score is the manual relevance/quality score in [0, 10].
	// Nil until explicitly assigned, which is distinct from a zero score.
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`

	// CreatedAt is set once at insertion.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt advances on every mutation.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Hypothesis is a testable statement bound to a paper. Hypotheses are
// immutable after creation and are removed when their paper is deleted.
type Hypothesis struct {
	ID         int64     `json:"id" yaml:"id"`
	PaperID    int64     `json:"paper_id" yaml:"paper_id"`
	Statement  string    `json:"statement" yaml:"statement"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// PaperFilter narrows a paper listing. Zero values mean "no constraint".
type PaperFilter struct {
	// Status keeps only papers in the given state.
	Status Status

	// Tag keeps only papers carrying the tag (case-insensitive).
	Tag string

	// MinScore keeps only papers with an assigned score >= MinScore.
	MinScore float64

	// Limit caps the number of rows returned. Zero means no cap.
	Limit int

	// ByScore orders results by score descending instead of the
	// default created_at ascending.
	ByScore bool
}

// Stats holds corpus-wide aggregates, computed fresh on each call.
type Stats struct {
	// TotalPapers is the number of papers in the corpus.
	TotalPapers int `json:"total_papers" yaml:"total_papers"`

	// ByStatus counts papers per status. Counts sum to TotalPapers.
	ByStatus map[Status]int `json:"by_status" yaml:"by_status"`

	// ScoredPapers is the number of papers with an explicitly assigned score.
	ScoredPapers int `json:"scored_papers" yaml:"scored_papers"`

	// AvgScore is the mean score over scored papers, 0 when none are scored.
	AvgScore float64 `json:"avg_score" yaml:"avg_score"`

	// TagCounts maps each tag to the number of papers carrying it.
	TagCounts map[string]int `json:"tag_counts" yaml:"tag_counts"`

	// HypothesisCount is the number of hypotheses across the corpus.
	HypothesisCount int `json:"hypothesis_count" yaml:"hypothesis_count"`

	// AvgConfidence is the mean hypothesis confidence, 0 when there are none.
	AvgConfidence float64 `json:"avg_confidence" yaml:"avg_confidence"`
}
