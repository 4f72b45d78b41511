package catalog

// seedAlbum is one entry of the curated demo catalog.
type seedAlbum struct {
	Title   string
	Artist  string
	Year    int
	Genre   string
	Label   string
	Tracks  int
	Format  string
	Bitrate int
}

// demoAlbums is the fixed curated library seeded into an empty catalog:
// 56 albums spanning multiple genres.
var demoAlbums = []seedAlbum{
	// Rock
	{"Abbey Road", "The Beatles", 1969, "Rock", "Apple Records", 17, "FLAC", 1411},
	{"Dark Side of the Moon", "Pink Floyd", 1973, "Rock", "Harvest Records", 10, "FLAC", 1411},
	{"Led Zeppelin IV", "Led Zeppelin", 1971, "Rock", "Atlantic Records", 8, "FLAC", 1411},
	{"Rumours", "Fleetwood Mac", 1977, "Rock", "Warner Bros.", 11, "MP3", 320},
	{"Born to Run", "Bruce Springsteen", 1975, "Rock", "Columbia", 8, "FLAC", 1411},
	{"Nevermind", "Nirvana", 1991, "Grunge", "DGC Records", 13, "MP3", 320},
	{"OK Computer", "Radiohead", 1997, "Art Rock", "Parlophone", 12, "FLAC", 1411},
	{"Appetite for Destruction", "Guns N' Roses", 1987, "Hard Rock", "Geffen Records", 12, "MP3", 320},
	{"The Joshua Tree", "U2", 1987, "Rock", "Island Records", 11, "FLAC", 1411},
	{"Paranoid", "Black Sabbath", 1970, "Heavy Metal", "Vertigo", 8, "FLAC", 1411},
	// Electronic / Dance
	{"Random Access Memories", "Daft Punk", 2013, "Electronic", "Columbia", 13, "FLAC", 1411},
	{"Discovery", "Daft Punk", 2001, "Electronic", "Virgin", 14, "MP3", 320},
	{"Selected Ambient Works 85–92", "Aphex Twin", 1992, "Ambient", "Apollo", 13, "FLAC", 1411},
	{"Music Has the Right to Children", "Boards of Canada", 1998, "IDM", "Warp Records", 18, "FLAC", 1411},
	{"Homework", "Daft Punk", 1997, "House", "Virgin", 16, "MP3", 320},
	{"Since I Left You", "The Avalanches", 2000, "Electronic", "Modular", 18, "MP3", 320},
	{"Untrue", "Burial", 2007, "UK Garage", "Hyperdub", 13, "FLAC", 1411},
	// Hip-Hop
	{"Illmatic", "Nas", 1994, "Hip-Hop", "Columbia", 10, "MP3", 320},
	{"To Pimp a Butterfly", "Kendrick Lamar", 2015, "Hip-Hop", "Aftermath", 16, "FLAC", 1411},
	{"The Chronic", "Dr. Dre", 1992, "Hip-Hop", "Death Row", 16, "MP3", 320},
	{"Ready to Die", "The Notorious B.I.G.", 1994, "Hip-Hop", "Bad Boy", 17, "MP3", 320},
	{"Madvillainy", "Madvillain", 2004, "Hip-Hop", "Stones Throw", 22, "FLAC", 1411},
	{"Aquemini", "OutKast", 1998, "Hip-Hop", "LaFace", 16, "MP3", 320},
	{"My Beautiful Dark Twisted Fantasy", "Kanye West", 2010, "Hip-Hop", "Roc-A-Fella", 13, "FLAC", 1411},
	// Jazz
	{"Kind of Blue", "Miles Davis", 1959, "Jazz", "Columbia", 5, "FLAC", 1411},
	{"A Love Supreme", "John Coltrane", 1965, "Jazz", "Impulse!", 4, "FLAC", 1411},
	{"Time Out", "Dave Brubeck Quartet", 1959, "Jazz", "Columbia", 7, "FLAC", 1411},
	{"Bitches Brew", "Miles Davis", 1970, "Jazz Fusion", "Columbia", 6, "FLAC", 1411},
	{"Mingus Ah Um", "Charles Mingus", 1959, "Jazz", "Columbia", 9, "FLAC", 1411},
	// Classical
	{"The Well-Tempered Clavier", "Glenn Gould", 1963, "Classical", "Columbia Masterworks", 48, "FLAC", 1411},
	{"Goldberg Variations", "Glenn Gould", 1981, "Classical", "CBS Masterworks", 32, "FLAC", 1411},
	// R&B / Soul
	{"What's Going On", "Marvin Gaye", 1971, "Soul", "Tamla", 9, "FLAC", 1411},
	{"Songs in the Key of Life", "Stevie Wonder", 1976, "R&B", "Tamla", 21, "FLAC", 1411},
	{"Purple Rain", "Prince", 1984, "R&B", "Warner Bros.", 9, "MP3", 320},
	{"Lemonade", "Beyoncé", 2016, "R&B", "Columbia", 12, "FLAC", 1411},
	{"I Never Loved a Man the Way I Love You", "Aretha Franklin", 1967, "Soul", "Atlantic", 11, "FLAC", 1411},
	// Indie / Alternative
	{"In the Aeroplane Over the Sea", "Neutral Milk Hotel", 1998, "Indie Folk", "Merge Records", 11, "FLAC", 1411},
	{"Funeral", "Arcade Fire", 2004, "Indie Rock", "Merge Records", 10, "MP3", 320},
	{"Is This It", "The Strokes", 2001, "Indie Rock", "RCA", 11, "MP3", 320},
	{"Kid A", "Radiohead", 2000, "Art Rock", "Parlophone", 10, "FLAC", 1411},
	{"Yankee Hotel Foxtrot", "Wilco", 2002, "Alt-Country", "Nonesuch", 11, "FLAC", 1411},
	{"Loveless", "My Bloody Valentine", 1991, "Shoegaze", "Creation Records", 11, "FLAC", 1411},
	{"Blue", "Joni Mitchell", 1971, "Folk", "Reprise Records", 10, "FLAC", 1411},
	// Country / Americana
	{"At Folsom Prison", "Johnny Cash", 1968, "Country", "Columbia", 28, "MP3", 320},
	{"Harvest", "Neil Young", 1972, "Country Rock", "Reprise", 10, "FLAC", 1411},
	// World / Reggae
	{"Legend", "Bob Marley & The Wailers", 1984, "Reggae", "Island Records", 14, "MP3", 320},
	{"Graceland", "Paul Simon", 1986, "World", "Warner Bros.", 11, "FLAC", 1411},
	// Pop
	{"Thriller", "Michael Jackson", 1982, "Pop", "Epic Records", 9, "MP3", 320},
	{"Ray of Light", "Madonna", 1998, "Pop", "Maverick", 13, "MP3", 320},
	{"Tapestry", "Carole King", 1971, "Pop", "Ode Records", 13, "FLAC", 1411},
	// Metal
	{"Master of Puppets", "Metallica", 1986, "Heavy Metal", "Elektra", 8, "MP3", 320},
	{"Rust in Peace", "Megadeth", 1990, "Thrash Metal", "Capitol", 9, "MP3", 320},
	// Punk
	{"London Calling", "The Clash", 1979, "Punk", "CBS", 19, "MP3", 320},
	{"Never Mind the Bollocks", "Sex Pistols", 1977, "Punk", "Virgin", 12, "MP3", 320},
	// Extra
	{"Pet Sounds", "The Beach Boys", 1966, "Pop", "Capitol", 13, "FLAC", 1411},
	{"Songs of Leonard Cohen", "Leonard Cohen", 1967, "Folk", "Columbia", 10, "FLAC", 1411},
}

// trackTemplates maps a genre to realistic track title patterns. Albums
// whose genre has no entry fall back to the "default" list; albums with
// more tracks than templates cycle, so duplicate titles are expected.
var trackTemplates = map[string][]string{
	"Rock": {"Intro", "Highway Jam", "Electric Daydream", "Stone Cold", "Fire in the Sky",
		"Midnight Rider", "Rolling Thunder", "Last Train Home", "Gasoline Dreams", "Iron Curtain",
		"River of Souls", "Locomotive", "Desert Rain", "Signal Fire", "Ghost Road"},
	"Electronic": {"System Boot", "Radiant Flux", "Data Stream", "Neon Pulse", "Binary Sunset",
		"Frequency Drift", "Vapor Trail", "Circuit Breaker", "Phase Shift", "Resonance",
		"Sync", "Module 7", "Echo Chamber", "Particle Storm", "White Noise"},
	"Hip-Hop": {"Intro", "Street Wisdom", "Hard Knock", "Crown Heights", "Real Talk",
		"Paper Chase", "Night Moves", "Still Standing", "Block Party", "On the Come Up",
		"Hustle Hard", "Concrete Jungle", "No Sleep", "Outro", "Freestyle"},
	"Jazz": {"Prelude", "Blue Note", "After Midnight", "Walking Bass", "Modal Shift",
		"Cool Breeze", "Ballad for No One", "Uptempo", "The Change", "Resolution"},
	"Classical": {"Allegro", "Andante", "Scherzo", "Adagio", "Presto",
		"Rondo", "Minuet", "Theme and Variations", "Coda", "Overture"},
	"default": {"Opening", "Main Theme", "Interlude", "Bridge", "Chorus",
		"Verse", "Outro", "Reprise", "Finale", "Coda",
		"Movement I", "Movement II", "Movement III", "Movement IV", "Epilogue"},
}
