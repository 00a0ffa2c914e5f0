package table

import (
	"testing"

	"github.com/pingcap/parser/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistsCreateSQL(t *testing.T) {
	sql := Artists.CreateSQL("spotify")
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS `spotify`.`spotify_artists` (")
	assert.Contains(t, sql, "`id` varchar(256)")
	assert.Contains(t, sql, "`artist_popularity` int")
	assert.Contains(t, sql, "PRIMARY KEY (`id`)")
}

func TestAlbumsCreateSQL(t *testing.T) {
	sql := Albums.CreateSQL("spotify")
	assert.Contains(t, sql, "`spotify`.`spotify_albums`")
	assert.Contains(t, sql, "`available_markets` varchar(1000)")
	assert.Contains(t, sql, "`total_tracks` int")
	assert.Contains(t, sql, "PRIMARY KEY (`id`)")
}

func TestDropSQL(t *testing.T) {
	assert.Equal(t, "DROP TABLE IF EXISTS `spotify`.`spotify_artists`;", Artists.DropSQL("spotify"))
}

func TestColumnLookup(t *testing.T) {
	c, ok := Albums.Column("release_date")
	require.True(t, ok)
	assert.Equal(t, Varchar, c.Type())

	_, ok = Albums.Column("nope")
	assert.False(t, ok)
}

func TestWithColumn(t *testing.T) {
	extra := Column{Name: "album", SqlType: mysql.TypeVarchar, Length: 512}
	eff := Albums.WithColumn(extra)
	assert.Len(t, eff.Columns, len(Albums.Columns)+1)
	assert.Contains(t, eff.CreateSQL("spotify"), "`album` varchar(512)")

	// existing names are left alone
	same := Albums.WithColumn(Column{Name: "id", SqlType: mysql.TypeLong})
	assert.Len(t, same.Columns, len(Albums.Columns))
	id, _ := same.Column("id")
	assert.Equal(t, Varchar, id.Type())
}

func TestSQLValue(t *testing.T) {
	s := Column{Name: "name", SqlType: mysql.TypeVarchar, Length: 256}
	assert.Equal(t, "'Thriller'", s.SQLValue("Thriller"))
	assert.Equal(t, `'O\'Neil'`, s.SQLValue("O'Neil"))
	assert.Equal(t, `'a\\b'`, s.SQLValue(`a\b`))
	assert.Equal(t, "''", s.SQLValue(""))

	n := Column{Name: "total_tracks", SqlType: mysql.TypeLong}
	assert.Equal(t, "12", n.SQLValue("12"))
	assert.Equal(t, "NULL", n.SQLValue(""))
	assert.Equal(t, "NULL", n.SQLValue("12; DROP TABLE x"))
}

func TestTypeMapping(t *testing.T) {
	assert.Equal(t, Integer, SqlTypeMapping[mysql.TypeLong])
	assert.Equal(t, Integer, SqlTypeMapping[mysql.TypeLonglong])
	assert.Equal(t, Varchar, SqlTypeMapping[mysql.TypeVarchar])
	assert.True(t, Varchar.IsString())
	assert.False(t, Integer.IsString())
}
