package consts

const (
	IndexSeparator = "-"

	PreviewRows = 5
	InsertBatch = 1000

	// Length given to columns that exist only in the source dataset,
	// such as a derived index column absent from the declared schema.
	DerivedColumnLength = 512

	DefaultHost     = "127.0.0.1"
	DefaultPort     = 3306
	DefaultUser     = "root"
	DefaultDatabase = "spotify"

	DefaultArtistsPath = "data/spotify_artists.csv"
	DefaultAlbumsPath  = "data/spotify_albums.csv"
)
