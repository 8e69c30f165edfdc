package sync

import (
	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
)

// Outcome is the combined summary of a reported operation
type Outcome struct {
	Operation string
	Error     string
	Summaries []BucketSummary
}

// BucketSummary is the one-line digest of a status bucket
type BucketSummary struct {
	Status changeset.Status
	Count  int    // records in the bucket, metadata included
	Line   string // e.g. "Created elements: 2 | project properties: 2"
}

// Lines returns the summary lines in status order
func (o *Outcome) Lines() []string {
	lines := make([]string, 0, len(o.Summaries))
	for _, s := range o.Summaries {
		lines = append(lines, s.Line)
	}
	return lines
}

// Changed reports whether any bucket holds a record
func (o *Outcome) Changed() bool {
	for _, s := range o.Summaries {
		if s.Count > 0 {
			return true
		}
	}
	return false
}
