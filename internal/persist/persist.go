// Package persist stores named state records durably in sqlite. Each record
// is one row holding a JSON document; the store writes its whitelisted slice
// here after every mutation and reads it back once at startup.
package persist

import (
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type DB struct {
	db *sqlx.DB
}

// Open opens (or creates) the sqlite database at dsn and ensures the state
// table exists. Use ":memory:" for tests.
func Open(dsn string) (*DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") {
		// Every new pool connection would otherwise open its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS app_state(
  name       TEXT PRIMARY KEY,
  data       TEXT NOT NULL,
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// Save upserts the record, replacing any previous version.
func (d *DB) Save(name string, data []byte) error {
	_, err := d.db.Exec(`
	  INSERT INTO app_state(name, data, updated_at)
	  VALUES(?, ?, ?)
	  ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, name, string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}

// Load returns the record's JSON document. The second return is false when no
// record with that name has ever been saved.
func (d *DB) Load(name string) ([]byte, bool, error) {
	var data string
	err := d.db.Get(&data, `SELECT data FROM app_state WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(data), true, nil
}

// Delete removes the record; absent names are a no-op.
func (d *DB) Delete(name string) error {
	_, err := d.db.Exec(`DELETE FROM app_state WHERE name = ?`, name)
	return err
}

func (d *DB) Close() error { return d.db.Close() }
