package dataset

import (
	"bytes"
	"fmt"

	"github.com/pingcap/parser/mysql"

	"github.com/jarretjeter/Spotify-Data-Loader/consts"
	"github.com/jarretjeter/Spotify-Data-Loader/database"
	"github.com/jarretjeter/Spotify-Data-Loader/table"
)

// LoadTable replaces the destination table's contents with the dataset:
// the table is dropped and recreated, then every row is inserted in
// batched multi-row statements. Dataset columns absent from the declared
// schema (the derived index column) are added to the recreated table as
// plain varchars.
func (d *Dataset) LoadTable(db *database.DB, tbl table.Table) error {
	eff := d.effectiveTable(tbl)
	d.logger.Infof("loading %s into %s, %d rows", d.Name, eff, len(d.Rows))

	if _, err := db.Exec(eff.DropSQL(db.Name())); err != nil {
		return err
	}
	if _, err := db.Exec(eff.CreateSQL(db.Name())); err != nil {
		return err
	}
	stmts, err := d.insertStatements(eff, db.Name())
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	d.logger.Infof("%s load finished", eff)
	return nil
}

func (d *Dataset) effectiveTable(tbl table.Table) table.Table {
	for _, name := range d.Columns {
		tbl = tbl.WithColumn(table.Column{
			Name:    name,
			SqlType: mysql.TypeVarchar,
			Length:  consts.DerivedColumnLength,
		})
	}
	return tbl
}

func (d *Dataset) insertStatements(eff table.Table, dbName string) ([]string, error) {
	cols := make([]table.Column, len(d.Columns))
	header := bytes.Buffer{}
	header.WriteString(fmt.Sprintf("INSERT INTO `%s`.`%s` (", dbName, eff.Name))
	for i, name := range d.Columns {
		c, ok := eff.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: table %s has no column %q", ErrColumn, eff, name)
		}
		cols[i] = c
		if i > 0 {
			header.WriteString(",")
		}
		header.WriteString(fmt.Sprintf("`%s`", name))
	}
	header.WriteString(") VALUES ")

	stmts := make([]string, 0, len(d.Rows)/consts.InsertBatch+1)
	buf := bytes.Buffer{}
	for offset := 0; offset < len(d.Rows); offset += consts.InsertBatch {
		buf.Reset()
		buf.Write(header.Bytes())
		end := offset + consts.InsertBatch
		if end > len(d.Rows) {
			end = len(d.Rows)
		}
		for i := offset; i < end; i++ {
			if i > offset {
				buf.WriteString(",")
			}
			buf.WriteString("(")
			for j, c := range cols {
				if j > 0 {
					buf.WriteString(",")
				}
				buf.WriteString(c.SQLValue(d.Rows[i][j]))
			}
			buf.WriteString(")")
		}
		buf.WriteString(";")
		stmts = append(stmts, buf.String())
	}
	return stmts, nil
}
