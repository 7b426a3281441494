package highlight

import (
	"encoding/json"
	"testing"
)

func TestRecordDisplayTime(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{name: "highlight time wins", rec: Record{HighlightTime: "2024-01-01T00:00:00Z", FetchedAt: "2024-02-01T00:00:00Z"}, want: "2024-01-01T00:00:00Z"},
		{name: "fetched fallback", rec: Record{FetchedAt: "2024-02-01T00:00:00Z"}, want: "2024-02-01T00:00:00Z"},
		{name: "blank highlight time falls back", rec: Record{HighlightTime: "  ", FetchedAt: "2024-02-01T00:00:00Z"}, want: "2024-02-01T00:00:00Z"},
		{name: "neither", rec: Record{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.DisplayTime(); got != tt.want {
				t.Fatalf("DisplayTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocumentDecodeWireFormat(t *testing.T) {
	raw := `{"updated_at":"2024-01-01T00:00:00Z","items":[{"book_title":"Dune","highlight_text":"Fear is the mind-killer.","highlight_time":"2024-01-01T00:00:00Z"}]}`

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", doc.Len())
	}
	if doc.Items[0].BookTitle != "Dune" {
		t.Errorf("BookTitle = %q", doc.Items[0].BookTitle)
	}
	if doc.Items[0].FetchedAt != "" {
		t.Errorf("FetchedAt should be empty, got %q", doc.Items[0].FetchedAt)
	}
}

func TestDocumentLenNil(t *testing.T) {
	var doc *Document
	if doc.Len() != 0 {
		t.Fatal("nil document should have zero length")
	}
	if (&Document{}).Len() != 0 {
		t.Fatal("document without items should have zero length")
	}
}
