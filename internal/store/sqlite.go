package store

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE,
	email TEXT UNIQUE,
	password_hash TEXT
);
CREATE TABLE IF NOT EXISTS products (
	productid INTEGER PRIMARY KEY AUTOINCREMENT,
	productname TEXT,
	description TEXT,
	quantity INTEGER,
	price REAL
);`

// OpenSQLite opens (or creates) an embedded database at path.
func OpenSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// A single connection keeps :memory: databases coherent and
	// serializes writers, which sqlite requires anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &sqlStore{db: db, isDuplicate: isSQLiteDuplicate}, nil
}

func isSQLiteDuplicate(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
