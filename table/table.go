package table

import (
	"bytes"
	"fmt"

	"github.com/jarretjeter/Spotify-Data-Loader/database"
	"github.com/jarretjeter/Spotify-Data-Loader/log"
)

type Table struct {
	Name    string
	Columns []Column
}

func (t Table) String() string {
	return t.Name
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// WithColumn returns a copy of the table extended by c, or the table
// unchanged when a column of that name is already declared.
func (t Table) WithColumn(c Column) Table {
	if _, ok := t.Column(c.Name); ok {
		return t
	}
	cols := make([]Column, 0, len(t.Columns)+1)
	cols = append(cols, t.Columns...)
	cols = append(cols, c)
	return Table{Name: t.Name, Columns: cols}
}

func (t Table) CreateSQL(database string) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s`.`%s` (", database, t.Name))
	keys := make([]string, 0, 1)
	for i, c := range t.Columns {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(c.ddl())
		if c.PrimaryKey {
			keys = append(keys, c.Name)
		}
	}
	for i, k := range keys {
		if i == 0 {
			buf.WriteString(", PRIMARY KEY (")
		} else {
			buf.WriteString(",")
		}
		buf.WriteString(fmt.Sprintf("`%s`", k))
		if i == len(keys)-1 {
			buf.WriteString(")")
		}
	}
	buf.WriteString(") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;")
	return buf.String()
}

func (t Table) DropSQL(database string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS `%s`.`%s`;", database, t.Name)
}

// CreateSchema declares both spotify tables in the connection's database,
// creating the database itself when absent. With dropFirst the tables are
// dropped beforehand, discarding any rows from a prior run.
func CreateSchema(db *database.DB, logger *log.Logger, dropFirst bool) error {
	_, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET 'utf8mb4';", db.Name()))
	if err != nil {
		return err
	}
	for _, t := range []Table{Artists, Albums} {
		if dropFirst {
			logger.Infof("dropping table %s before create", t)
			if _, err := db.Exec(t.DropSQL(db.Name())); err != nil {
				return err
			}
		}
		logger.Infof("creating table %s", t)
		if _, err := db.Exec(t.CreateSQL(db.Name())); err != nil {
			return err
		}
	}
	return nil
}

func Count(db *database.DB, t Table) (int, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT count(0) FROM `%s`.`%s`", db.Name(), t.Name))
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	total := 0
	if rows.Next() {
		if err := rows.Scan(&total); err != nil {
			return 0, err
		}
	}
	return total, rows.Err()
}
