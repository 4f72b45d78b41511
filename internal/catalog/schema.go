package catalog

// Schema DDL. Every statement is idempotent (IF NOT EXISTS) so
// EnsureSchema is safe to run on every process start.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS artists (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		name    TEXT NOT NULL UNIQUE,
		sort    TEXT
	);`,

	`CREATE TABLE IF NOT EXISTS albums (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		artist_id   INTEGER REFERENCES artists(id),
		artist      TEXT NOT NULL,
		year        INTEGER,
		genre       TEXT,
		label       TEXT,
		format      TEXT DEFAULT 'FLAC',
		bitrate     INTEGER DEFAULT 1411,
		track_count INTEGER DEFAULT 0,
		duration    INTEGER DEFAULT 0,
		added       TEXT DEFAULT (datetime('now'))
	);`,

	`CREATE TABLE IF NOT EXISTS tracks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		album_id    INTEGER REFERENCES albums(id),
		title       TEXT NOT NULL,
		artist      TEXT NOT NULL,
		track_num   INTEGER,
		disc_num    INTEGER DEFAULT 1,
		duration    INTEGER,
		format      TEXT DEFAULT 'FLAC',
		bitrate     INTEGER DEFAULT 1411,
		path        TEXT
	);`,

	// External-content FTS index over the albums table, keyed 1:1 by
	// album rowid. Derived view only: rebuilt wholesale after mutations.
	`CREATE VIRTUAL TABLE IF NOT EXISTS albums_fts USING fts5(
		title, artist, genre, label,
		content='albums',
		content_rowid='id'
	);`,
}

var indexDDL = []string{
	"CREATE INDEX IF NOT EXISTS idx_albums_genre ON albums(genre);",
	"CREATE INDEX IF NOT EXISTS idx_albums_artist ON albums(artist);",
	"CREATE INDEX IF NOT EXISTS idx_albums_format ON albums(format);",
	"CREATE INDEX IF NOT EXISTS idx_albums_year ON albums(year, title);",
	"CREATE INDEX IF NOT EXISTS idx_tracks_album ON tracks(album_id, disc_num, track_num);",
	"CREATE INDEX IF NOT EXISTS idx_tracks_artist ON tracks(artist, title);",
}

// EnsureSchema creates the artists, albums and tracks tables plus the
// albums_fts full-text index if absent. Pure idempotent DDL; fails only
// on unrecoverable storage errors.
func (s *Store) EnsureSchema() error {
	for _, ddl := range schemaDDL {
		if _, err := s.conn.Exec(ddl); err != nil {
			return err
		}
	}
	for _, ddl := range indexDDL {
		if _, err := s.conn.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
