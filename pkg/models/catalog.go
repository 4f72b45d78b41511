package models

// Album represents one album row in the catalog. Artist is denormalized
// from the artists table so list queries don't need a join.
type Album struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	ArtistID   int    `json:"artist_id"`
	Artist     string `json:"artist"`
	Year       int    `json:"year"`
	Genre      string `json:"genre"`
	Label      string `json:"label"`
	Format     string `json:"format"`
	Bitrate    int    `json:"bitrate"` // kbps
	TrackCount int    `json:"track_count"`
	Duration   int    `json:"duration"` // in seconds
	Added      string `json:"added"`
}

// AlbumDetail is an album with its full track listing, ordered by disc
// number then track number.
type AlbumDetail struct {
	Album
	Tracks []Track `json:"tracks"`
}

// Track represents one track belonging to an album. Format and bitrate
// are copied from the album at creation; Path is display-only and never
// resolved against a real filesystem.
type Track struct {
	ID       int    `json:"id"`
	AlbumID  int    `json:"album_id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	TrackNum int    `json:"track_num"`
	DiscNum  int    `json:"disc_num"`
	Duration int    `json:"duration"` // in seconds
	Format   string `json:"format"`
	Bitrate  int    `json:"bitrate"`
	Path     string `json:"path"`
}

// TrackWithAlbum is a track joined with its owning album's title and
// genre for display context in flat track listings.
type TrackWithAlbum struct {
	Track
	AlbumTitle string `json:"album_title"`
	Genre      string `json:"genre"`
}

// AlbumUpdate carries a partial album edit. Nil fields are left
// untouched; an all-nil update is rejected by the store.
type AlbumUpdate struct {
	Title  *string `json:"title"`
	Artist *string `json:"artist"`
	Year   *int    `json:"year"`
	Genre  *string `json:"genre"`
	Label  *string `json:"label"`
}

// IsEmpty reports whether no field is set.
func (u AlbumUpdate) IsEmpty() bool {
	return u.Title == nil && u.Artist == nil && u.Year == nil && u.Genre == nil && u.Label == nil
}

// TrackUpdate carries a partial track edit with the same nil-means-keep
// contract as AlbumUpdate. Editing a track never recomputes the owning
// album's track_count or duration aggregates.
type TrackUpdate struct {
	Title    *string `json:"title"`
	TrackNum *int    `json:"track_num"`
	DiscNum  *int    `json:"disc_num"`
}

// IsEmpty reports whether no field is set.
func (u TrackUpdate) IsEmpty() bool {
	return u.Title == nil && u.TrackNum == nil && u.DiscNum == nil
}

// AlbumQuery is a structured album list request: optional free-text
// term, exact-match filters, a sort key and a pagination window.
type AlbumQuery struct {
	Term   string
	Genre  string
	Artist string
	Format string
	Sort   string // newest | oldest | title | artist
	Limit  int
	Offset int
}

// AlbumPage is one page of album results. Total counts all matches
// before pagination was applied.
type AlbumPage struct {
	Items  []Album `json:"items"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// TrackPage is one page of track results.
type TrackPage struct {
	Items  []TrackWithAlbum `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// Stats summarizes the whole catalog.
type Stats struct {
	TotalAlbums       int           `json:"total_albums"`
	TotalTracks       int           `json:"total_tracks"`
	TotalArtists      int           `json:"total_artists"`
	TotalDurationSecs int           `json:"total_duration_secs"`
	TotalDurationFmt  string        `json:"total_duration_fmt"`
	Genres            int           `json:"genres"`
	Formats           []FormatCount `json:"formats"`
}

// FormatCount is one audio format facet with its album count.
type FormatCount struct {
	Format string `json:"format"`
	Count  int    `json:"count"`
}

// GenreCount is one genre facet with its album count.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// ArtistCount is one artist facet with its album count.
type ArtistCount struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	AlbumCount int    `json:"album_count"`
}
