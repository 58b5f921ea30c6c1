package youtube

// playlistItemListResponse mirrors the subset of the playlistItems.list response we consume.
// See https://developers.google.com/youtube/v3/docs/playlistItems/list
type playlistItemListResponse struct {
	NextPageToken string             `json:"nextPageToken"`
	Items         []playlistItemJSON `json:"items"`
}

type playlistItemJSON struct {
	ID      string      `json:"id"`
	Snippet snippetJSON `json:"snippet"`
}

type snippetJSON struct {
	// PublishedAt is kept raw so parse failures surface as item errors.
	PublishedAt string         `json:"publishedAt"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Thumbnails  thumbnailsJSON `json:"thumbnails"`
	PlaylistID  string         `json:"playlistId"`
	Position    *int64         `json:"position"`
	ResourceID  resourceIDJSON `json:"resourceId"`
}

type thumbnailsJSON struct {
	Default *thumbnailJSON `json:"default"`
	Medium  *thumbnailJSON `json:"medium"`
	High    *thumbnailJSON `json:"high"`
}

type thumbnailJSON struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type resourceIDJSON struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

// errorResponse is the Google API error envelope.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
