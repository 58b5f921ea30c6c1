package youtube

import (
	"net/url"
	"testing"
)

func TestWatchURL(t *testing.T) {
	got := WatchURL("ab c", "PL 1", 2)

	want := "https://www.youtube.com/watch?v=ab%20c&list=PL%201&index=2"
	if got != want {
		t.Errorf("WatchURL() = %v, want %v", got, want)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("url.Parse failed: %v", err)
	}
	q := u.Query()
	if q.Get("v") != "ab c" {
		t.Errorf("v = %q, want %q", q.Get("v"), "ab c")
	}
	if q.Get("list") != "PL 1" {
		t.Errorf("list = %q, want %q", q.Get("list"), "PL 1")
	}
	if q.Get("index") != "2" {
		t.Errorf("index = %q, want %q", q.Get("index"), "2")
	}
}

func TestWatchURL_EscapesReservedCharacters(t *testing.T) {
	got := WatchURL("a&b=c", "PL/x?y", 0)

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("url.Parse failed: %v", err)
	}
	if u.Query().Get("v") != "a&b=c" {
		t.Errorf("v = %q, want %q", u.Query().Get("v"), "a&b=c")
	}
	if u.Query().Get("list") != "PL/x?y" {
		t.Errorf("list = %q, want %q", u.Query().Get("list"), "PL/x?y")
	}
}

func TestPlaylistURL(t *testing.T) {
	tests := []struct {
		playlistID string
		want       string
	}{
		{"PL0M0zPgJ3HSftTAAHttA3JQU4vOjXFquF", "https://www.youtube.com/playlist?list=PL0M0zPgJ3HSftTAAHttA3JQU4vOjXFquF"},
		{"PL 1", "https://www.youtube.com/playlist?list=PL%201"},
	}

	for _, tt := range tests {
		t.Run(tt.playlistID, func(t *testing.T) {
			if got := PlaylistURL(tt.playlistID); got != tt.want {
				t.Errorf("PlaylistURL() = %v, want %v", got, tt.want)
			}
		})
	}
}
