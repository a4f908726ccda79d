//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"guestbook/internal/model"
	"guestbook/pkg/snowflake"
)

// EntryRepository is the guestbook row store. Each method is a single
// statement; nothing spans calls in a transaction.
type EntryRepository interface {
	// Create assigns an ID to entry and inserts it.
	Create(ctx context.Context, entry model.Entry) (model.Entry, error)
	// LastPostAt returns the date of the most recent entry whose source
	// address matches ip without regard to case, or nil if there is none.
	LastPostAt(ctx context.Context, ip string) (*time.Time, error)
	Count(ctx context.Context) (int, error)
	Page(ctx context.Context, offset, limit int, order model.Order) ([]model.Entry, error)
	// Recent returns at most limit entries, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]model.Entry, error)
	Stats(ctx context.Context) (model.Stats, error)
	Websites(ctx context.Context) ([]string, error)
}

type entryRepository struct {
	db dbtx
}

func NewEntryRepository(db *sql.DB) EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `id, ip, comment, name, website, country, date`

func (r *entryRepository) Create(ctx context.Context, entry model.Entry) (model.Entry, error) {
	entry.ID = snowflake.NextID()
	entry.Date = entry.Date.UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO guestbook (id, ip, comment, name, website, country, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.IP, entry.Comment, nullableString(entry.Name), nullableString(entry.Website),
		nullableString(entry.Country), formatTime(entry.Date))
	if err != nil {
		return model.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return entry, nil
}

func (r *entryRepository) LastPostAt(ctx context.Context, ip string) (*time.Time, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `
		SELECT date FROM guestbook WHERE ip = ? COLLATE NOCASE ORDER BY id DESC LIMIT 1
	`, ip).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last post: %w", err)
	}
	t, err := parseTime(raw)
	if err != nil {
		return nil, fmt.Errorf("parse last post date %q: %w", raw, err)
	}
	return &t, nil
}

func (r *entryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM guestbook`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

func (r *entryRepository) Page(ctx context.Context, offset, limit int, order model.Order) ([]model.Entry, error) {
	direction := "DESC"
	if order == model.OrderAsc {
		direction = "ASC"
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM guestbook ORDER BY id `+direction+` LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query page: %w", err)
	}
	return scanEntries(rows)
}

func (r *entryRepository) Recent(ctx context.Context, limit int) ([]model.Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM guestbook ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	return scanEntries(rows)
}

func (r *entryRepository) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT ip) FROM guestbook`,
	).Scan(&stats.TotalPosts, &stats.UniqueSources); err != nil {
		return model.Stats{}, fmt.Errorf("count stats: %w", err)
	}

	websites, err := r.Websites(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	stats.Websites = websites

	names, err := r.queryStrings(ctx, `SELECT DISTINCT name FROM guestbook WHERE name IS NOT NULL ORDER BY name`)
	if err != nil {
		return model.Stats{}, fmt.Errorf("query names: %w", err)
	}
	stats.Names = names

	rows, err := r.db.QueryContext(ctx,
		`SELECT country, COUNT(*) FROM guestbook WHERE country IS NOT NULL GROUP BY country`)
	if err != nil {
		return model.Stats{}, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	stats.Countries = make(map[string]int)
	for rows.Next() {
		var code string
		var count int
		if err := rows.Scan(&code, &count); err != nil {
			return model.Stats{}, fmt.Errorf("scan country: %w", err)
		}
		stats.Countries[code] = count
	}
	return stats, rows.Err()
}

// Websites returns the distinct stored websites, a trailing slash ignored.
func (r *entryRepository) Websites(ctx context.Context) ([]string, error) {
	raw, err := r.queryStrings(ctx, `SELECT DISTINCT website FROM guestbook WHERE website IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("query websites: %w", err)
	}
	seen := make(map[string]struct{}, len(raw))
	websites := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSuffix(w, "/")
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		websites = append(websites, w)
	}
	sort.Strings(websites)
	return websites, nil
}

func (r *entryRepository) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]model.Entry, error) {
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		var ip, comment, name, website, country sql.NullString
		var date string
		if err := rows.Scan(&e.ID, &ip, &comment, &name, &website, &country, &date); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.IP = ip.String
		e.Comment = comment.String
		e.Name = stringPtr(name)
		e.Website = stringPtr(website)
		e.Country = stringPtr(country)
		parsed, err := parseTime(date)
		if err != nil {
			return nil, fmt.Errorf("parse entry %d date: %w", e.ID, err)
		}
		e.Date = parsed
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
