// Package derive computes display values from highlight records.
// Everything here is pure: callers pass the current time explicitly.
package derive

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tesso57/highlights/internal/domain/highlight"
)

const (
	// UnknownFull is shown by the web page when a record has no usable time.
	UnknownFull = "Unknown"
	// UnknownWidget is shown by widget surfaces when a record has no usable time.
	UnknownWidget = ""

	ellipsis = "..."
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a feed timestamp. The second result is false when the
// value is blank or in no recognized layout.
func ParseTime(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RelativeTime labels ts relative to now. Absent or unparseable timestamps
// yield unknown, which differs per surface (UnknownFull or UnknownWidget).
func RelativeTime(ts string, now time.Time, unknown string) string {
	t, ok := ParseTime(ts)
	if !ok {
		return unknown
	}
	return Elapsed(t, now)
}

// Elapsed buckets the time between t and now.
func Elapsed(t, now time.Time) string {
	mins := int64(now.Sub(t) / time.Minute)
	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case mins < 24*60:
		return fmt.Sprintf("%dh ago", mins/60)
	case mins < 7*24*60:
		return fmt.Sprintf("%dd ago", mins/(24*60))
	}

	local := t.In(now.Location())
	if local.Year() != now.Year() {
		return local.Format("Jan 2, 2006")
	}
	return local.Format("Jan 2")
}

// Truncate bounds text to maxLen characters. Longer text is cut to maxLen-3
// characters, trimmed of trailing whitespace and suffixed with "...".
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return strings.TrimRightFunc(string(runes[:maxLen-len(ellipsis)]), unicode.IsSpace) + ellipsis
}

// MostRecent returns the first record of the document; the feed is trusted
// to be ordered most recent first.
func MostRecent(doc *highlight.Document) (highlight.Record, bool) {
	if doc.Len() == 0 {
		return highlight.Record{}, false
	}
	return doc.Items[0], true
}
