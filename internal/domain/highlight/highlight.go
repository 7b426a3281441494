// Package highlight defines the canonical highlight feed model.
package highlight

import "strings"

// Record represents a single highlight captured on the reading device.
// Timestamps are kept as the raw ISO-8601 strings found in the feed.
type Record struct {
	BookTitle     string `json:"book_title"`
	HighlightText string `json:"highlight_text"`
	HighlightTime string `json:"highlight_time,omitempty"`
	FetchedAt     string `json:"fetched_at,omitempty"`
}

// DisplayTime returns the timestamp a surface should show for the record:
// the highlight time, falling back to the sync time. Empty means unknown.
func (r Record) DisplayTime() string {
	if t := strings.TrimSpace(r.HighlightTime); t != "" {
		return t
	}
	return strings.TrimSpace(r.FetchedAt)
}

// Document is the feed as published upstream. Items are ordered most recent first
// by the producer and are never re-sorted here.
type Document struct {
	UpdatedAt string   `json:"updated_at,omitempty"`
	Items     []Record `json:"items"`
}

// Len returns the number of records, treating a nil document as empty.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Items)
}
