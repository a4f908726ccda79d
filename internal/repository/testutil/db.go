package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"guestbook/internal/db"
	"guestbook/internal/model"
	"guestbook/pkg/snowflake"

	_ "modernc.org/sqlite"
)

var snowflakeOnce sync.Once

// NewTestDB opens a private in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// shared cache so every pooled connection sees the same memory database;
	// the name is unique per test.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// SeedEntry inserts entry as is (ID and Date included) and returns its ID.
// A zero ID gets a snowflake, a zero Date gets the current time.
func SeedEntry(t *testing.T, database *sql.DB, entry model.Entry) int64 {
	t.Helper()

	if entry.ID == 0 {
		entry.ID = snowflake.NextID()
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if entry.Comment == "" {
		entry.Comment = "seeded comment"
	}

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO guestbook (id, ip, comment, name, website, country, date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.IP, entry.Comment, ptrVal(entry.Name), ptrVal(entry.Website), ptrVal(entry.Country),
		entry.Date.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	)
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	return entry.ID
}

// CountEntries returns the number of stored rows.
func CountEntries(t *testing.T, database *sql.DB) int {
	t.Helper()

	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM guestbook`).Scan(&n); err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	return n
}
