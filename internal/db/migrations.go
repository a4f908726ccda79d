package db

import (
	"database/sql"
	"fmt"
)

// The table keeps the column names of databases created by earlier versions
// so that an existing database can be opened as is. IDs are snowflakes, so the
// AUTOINCREMENT of older files is harmless: new IDs are always larger.
const baseSchema = `
CREATE TABLE IF NOT EXISTS guestbook (
  id INTEGER PRIMARY KEY,
  ip TEXT,
  comment TEXT,
  name TEXT,
  website TEXT,
  country TEXT CHECK(length(country) <= 2),
  date DATETIME
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: rate-limit lookups match the source address without case.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_guestbook_ip ON guestbook(ip COLLATE NOCASE, id)`); err != nil {
		return fmt.Errorf("create idx_guestbook_ip: %w", err)
	}

	// Migration 2: older files stored country codes in upper case.
	if _, err := db.Exec(`UPDATE guestbook SET country = lower(country) WHERE country IS NOT NULL AND country != lower(country)`); err != nil {
		return fmt.Errorf("lower-case country codes: %w", err)
	}

	return nil
}
