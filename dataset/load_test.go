package dataset

import (
	"strings"
	"testing"

	"github.com/pingcap/parser/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarretjeter/Spotify-Data-Loader/table"
)

func TestEffectiveTableAddsIndexColumn(t *testing.T) {
	d, err := Load(writeCSV(t, "id,name,artist_id,release_date\nx1,Thriller,A1,1982-11-30\n"), testLogger())
	require.NoError(t, err)
	require.NoError(t, d.AddIndex("album", []string{"name", "artist_id", "release_date"}))

	eff := d.effectiveTable(table.Albums)
	c, ok := eff.Column("album")
	require.True(t, ok)
	assert.True(t, c.Type().IsString())
	assert.Len(t, eff.Columns, len(table.Albums.Columns)+1)

	// declared columns are never redefined
	id, ok := eff.Column("id")
	require.True(t, ok)
	assert.True(t, id.PrimaryKey)
}

func TestInsertStatements(t *testing.T) {
	d, err := Load(writeCSV(t, "id,name,artist_popularity\na1,Alpha,10\na2,O'Neil,\n"), testLogger())
	require.NoError(t, err)

	stmts, err := d.insertStatements(table.Artists, "spotify")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	stmt := stmts[0]
	assert.True(t, strings.HasPrefix(stmt, "INSERT INTO `spotify`.`spotify_artists` (`id`,`name`,`artist_popularity`) VALUES "))
	assert.Contains(t, stmt, "('a1','Alpha',10)")
	// quote escaped, empty integer rendered as NULL
	assert.Contains(t, stmt, `('a2','O\'Neil',NULL)`)
	assert.True(t, strings.HasSuffix(stmt, ";"))
}

func TestInsertStatementsBatching(t *testing.T) {
	rows := strings.Builder{}
	rows.WriteString("id\n")
	for i := 0; i < 2500; i++ {
		rows.WriteString("r\n")
	}
	d, err := Load(writeCSV(t, rows.String()), testLogger())
	require.NoError(t, err)

	tbl := table.Table{Name: "t", Columns: []table.Column{{Name: "id", SqlType: mysql.TypeVarchar, Length: 16}}}
	stmts, err := d.insertStatements(tbl, "spotify")
	require.NoError(t, err)
	assert.Len(t, stmts, 3)
	assert.Equal(t, 2500, strings.Count(strings.Join(stmts, ""), "('r')"))
}

func TestInsertStatementsUnknownColumn(t *testing.T) {
	d, err := Load(writeCSV(t, "id,bogus\na1,x\n"), testLogger())
	require.NoError(t, err)

	tbl := table.Table{Name: "t", Columns: []table.Column{table.Artists.Columns[0]}}
	_, err = d.insertStatements(tbl, "spotify")
	assert.ErrorIs(t, err, ErrColumn)
}
