package table

import "github.com/pingcap/parser/mysql"

// Artists is the destination schema for the spotify_artists dataset.
var Artists = Table{
	Name: "spotify_artists",
	Columns: []Column{
		{Name: "id", SqlType: mysql.TypeVarchar, Length: 256, PrimaryKey: true},
		{Name: "name", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "artist_popularity", SqlType: mysql.TypeLong},
		{Name: "followers", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "genres", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "track_id", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "track_id_prev", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "type", SqlType: mysql.TypeVarchar, Length: 256},
	},
}

// Albums is the destination schema for the spotify_albums dataset. The
// markets/urls/href/images columns carry serialized lists and need the
// extra length.
var Albums = Table{
	Name: "spotify_albums",
	Columns: []Column{
		{Name: "id", SqlType: mysql.TypeVarchar, Length: 256, PrimaryKey: true},
		{Name: "name", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "album_type", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "artist_id", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "available_markets", SqlType: mysql.TypeVarchar, Length: 1000},
		{Name: "external_urls", SqlType: mysql.TypeVarchar, Length: 1000},
		{Name: "href", SqlType: mysql.TypeVarchar, Length: 1000},
		{Name: "images", SqlType: mysql.TypeVarchar, Length: 1000},
		{Name: "release_date", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "release_date_precision", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "total_tracks", SqlType: mysql.TypeLong},
		{Name: "track_id", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "track_name_prev", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "uri", SqlType: mysql.TypeVarchar, Length: 256},
		{Name: "type", SqlType: mysql.TypeVarchar, Length: 256},
	},
}
