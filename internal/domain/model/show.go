package model

import "time"

// ProviderYouTube identifies shows recorded on YouTube.
const ProviderYouTube = "YouTube"

// Show represents one recorded episode.
type Show struct {
	Provider     string
	ProviderID   string
	Title        string
	Description  string
	ShowDate     time.Time
	ThumbnailURL string
	URL          string
}

// ShowList is the result of one retrieval.
// It is treated as immutable once built; cached instances are shared between callers.
type ShowList struct {
	Shows []Show

	// MoreShowsURL points at the full playlist when upstream reported further pages.
	// Empty means there are no more pages.
	MoreShowsURL string
}

// HasMoreShows reports whether upstream has shows beyond this list.
func (l *ShowList) HasMoreShows() bool {
	return l.MoreShowsURL != ""
}

// Len returns the number of shows in the list.
func (l *ShowList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Shows)
}
