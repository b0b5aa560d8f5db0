package sqliteutil

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// remote reports whether the target is a libsql/turso database rather
// than a local file.
func remote(path string) bool {
	return strings.HasPrefix(path, "libsql://") ||
		strings.HasPrefix(path, "wss://") ||
		strings.HasPrefix(path, "https://")
}

// Open opens (creating when missing) a sqlite database at the given path.
// ":memory:" is supported for tests. libsql://, wss:// and https:// URLs
// go over the wire to a hosted replica instead of the local driver.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("a database path was not specified")
	}
	if remote(path) {
		return sql.Open("libsql", path)
	}

	if path != ":memory:" {
		_, statErr := os.Stat(path)
		if os.IsNotExist(statErr) {
			f, err := os.Create(path)
			if err != nil {
				return nil, err
			}
			f.Close()
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	if path != ":memory:" {
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			return nil, err
		}
	}

	return db, nil
}

// OpenWithSchema opens a database and applies a schema to it, tolerating
// tables that already exist.
func OpenWithSchema(path, schema string) (*sql.DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
