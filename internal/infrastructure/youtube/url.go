package youtube

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	watchURLFormat    = "https://www.youtube.com/watch?v=%s&list=%s&index=%s"
	playlistURLFormat = "https://www.youtube.com/playlist?list=%s"
)

// WatchURL builds the canonical watch URL for a video at a position in a playlist.
func WatchURL(videoID, playlistID string, index int64) string {
	return fmt.Sprintf(watchURLFormat,
		escapeQuery(videoID),
		escapeQuery(playlistID),
		escapeQuery(strconv.FormatInt(index, 10)),
	)
}

// PlaylistURL builds the canonical URL of a playlist.
func PlaylistURL(playlistID string) string {
	return fmt.Sprintf(playlistURLFormat, escapeQuery(playlistID))
}

// escapeQuery percent-encodes a query component, spaces included.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
