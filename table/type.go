package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pingcap/parser/mysql"
)

type Type int

const (
	_ Type = iota
	Integer
	Varchar
)

func (t Type) IsString() bool {
	return t == Varchar
}

// SqlTypeMapping maps MySQL column type bytes to the internal type used
// for value rendering.
var SqlTypeMapping = map[byte]Type{
	mysql.TypeLong:     Integer,
	mysql.TypeLonglong: Integer,
	mysql.TypeVarchar:  Varchar,
	mysql.TypeString:   Varchar,
}

var sqlTypeNames = map[byte]string{
	mysql.TypeLong:     "int",
	mysql.TypeLonglong: "bigint",
	mysql.TypeVarchar:  "varchar",
	mysql.TypeString:   "char",
}

type Column struct {
	Name       string
	SqlType    byte
	Length     int
	PrimaryKey bool
}

func (c Column) Type() Type {
	return SqlTypeMapping[c.SqlType]
}

func (c Column) ddl() string {
	name := sqlTypeNames[c.SqlType]
	if c.Length > 0 && c.Type().IsString() {
		return fmt.Sprintf("`%s` %s(%d)", c.Name, name, c.Length)
	}
	return fmt.Sprintf("`%s` %s", c.Name, name)
}

var valueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// SQLValue renders a raw CSV field as a SQL literal for this column.
// Strings are quoted and escaped; integer columns pass numerics through
// and render anything else (including empty fields) as NULL.
func (c Column) SQLValue(s string) string {
	if c.Type().IsString() {
		return "'" + valueEscaper.Replace(s) + "'"
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return "NULL"
	}
	return s
}
