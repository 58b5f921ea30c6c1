package usecase

import (
	"time"

	"github.com/hszk-dev/liveshows/internal/domain/model"
)

// fallbackRecentAge is how far back the time-relative fallback entry is dated.
const fallbackRecentAge = 28 * 24 * time.Hour

// pacificStandard is the base UTC offset of US Pacific time.
var pacificStandard = time.FixedZone("PST", -8*60*60)

var fallbackHistoricalShows = []model.Show{
	{
		ShowDate:     time.Date(2015, 7, 21, 9, 30, 0, 0, pacificStandard),
		Title:        "ASP.NET Community Standup - July 21st 2015",
		Provider:     model.ProviderYouTube,
		ProviderID:   "7O81CAjmOXk",
		ThumbnailURL: "http://img.youtube.com/vi/7O81CAjmOXk/mqdefault.jpg",
		URL:          "https://www.youtube.com/watch?v=7O81CAjmOXk&index=1&list=PL0M0zPgJ3HSftTAAHttA3JQU4vOjXFquF",
	},
	{
		ShowDate:     time.Date(2015, 7, 14, 15, 30, 0, 0, pacificStandard),
		Title:        "ASP.NET Community Standup - July 14th 2015",
		Provider:     model.ProviderYouTube,
		ProviderID:   "bFXseBPGAyQ",
		ThumbnailURL: "http://img.youtube.com/vi/bFXseBPGAyQ/mqdefault.jpg",
		URL:          "https://www.youtube.com/watch?v=bFXseBPGAyQ&index=2&list=PL0M0zPgJ3HSftTAAHttA3JQU4vOjXFquF",
	},
	{
		ShowDate:     time.Date(2015, 7, 7, 15, 30, 0, 0, pacificStandard),
		Title:        "ASP.NET Community Standup - July 7th 2015",
		Provider:     model.ProviderYouTube,
		ProviderID:   "APagQ1CIVGA",
		ThumbnailURL: "http://img.youtube.com/vi/APagQ1CIVGA/mqdefault.jpg",
		URL:          "https://www.youtube.com/watch?v=APagQ1CIVGA&index=3&list=PL0M0zPgJ3HSftTAAHttA3JQU4vOjXFquF",
	},
}

// FallbackShows returns the local demo data set served when no upstream API key is configured.
// The last entry is dated relative to now so the list keeps a recent-looking show.
func FallbackShows(now time.Time) []model.Show {
	shows := make([]model.Show, 0, len(fallbackHistoricalShows)+1)
	shows = append(shows, fallbackHistoricalShows...)

	recent := fallbackHistoricalShows[0]
	recent.ShowDate = now.Add(-fallbackRecentAge)
	return append(shows, recent)
}
