package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// ErrDatabase is the kind wrapped around every connection, DDL and
// insert failure surfaced by this module.
var ErrDatabase = errors.New("database error")

type DB struct {
	db   *sql.DB
	name string
}

// Open builds a connection pool for the given MySQL endpoint. The
// connection is lazy: no dial happens here, a bad address or password
// surfaces on first use. The session has no default schema so that the
// named database can be created on first run; statements qualify table
// names with Name().
func Open(host string, port int, user, password, name string) (*DB, error) {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", host, port)

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDatabase, cfg.Addr, err)
	}
	db.SetConnMaxIdleTime(60 * time.Second)
	db.SetMaxIdleConns(2)
	db.SetMaxOpenConns(4)
	return &DB{db: db, name: name}, nil
}

// Name is the database the loader reads from and writes to.
func (d *DB) Name() string {
	return d.name
}

func (d *DB) Exec(sql string, args ...interface{}) (sql.Result, error) {
	res, err := d.db.Exec(sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return res, nil
}

func (d *DB) Query(sql string, args ...interface{}) (*sql.Rows, error) {
	rows, err := d.db.Query(sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return rows, nil
}

func (d *DB) Begin() (*sql.Tx, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	return tx, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
