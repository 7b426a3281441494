package settings

import (
	"testing"
	"time"
)

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{url: "", want: true},
		{url: "   ", want: true},
		{url: FeedURLPlaceholder, want: true},
		{url: " " + FeedURLPlaceholder + " ", want: true},
		{url: "https://gist.githubusercontent.com/u/id/raw/latest.json", want: false},
	}

	for _, tt := range tests {
		if got := IsPlaceholder(tt.url); got != tt.want {
			t.Errorf("IsPlaceholder(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestSettings_ViewerTarget(t *testing.T) {
	if got := (Settings{ViewerURL: ViewerURLPlaceholder}).ViewerTarget(); got != "" {
		t.Fatalf("placeholder viewer url should yield no target, got %q", got)
	}
	if got := (Settings{}).ViewerTarget(); got != "" {
		t.Fatalf("empty viewer url should yield no target, got %q", got)
	}
	want := "https://example.github.io/highlights/"
	if got := (Settings{ViewerURL: " " + want}).ViewerTarget(); got != want {
		t.Fatalf("ViewerTarget() = %q, want %q", got, want)
	}
}

func TestSettings_Durations(t *testing.T) {
	var s Settings
	if s.FetchTimeout() != 10*time.Second {
		t.Errorf("FetchTimeout default = %v", s.FetchTimeout())
	}
	if s.RefreshInterval() != 15*time.Minute {
		t.Errorf("RefreshInterval default = %v", s.RefreshInterval())
	}

	s.Fetch.TimeoutSeconds = 3
	s.Widget.RefreshMinutes = 1
	if s.FetchTimeout() != 3*time.Second {
		t.Errorf("FetchTimeout = %v", s.FetchTimeout())
	}
	if s.RefreshInterval() != time.Minute {
		t.Errorf("RefreshInterval = %v", s.RefreshInterval())
	}
}
