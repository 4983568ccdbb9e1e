// Package storage persists store snapshots. The primary implementation is
// SQLite-backed; Memory backs tests and persistence-free runs.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tally/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a SQLite-backed snapshot persister.
type DB struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Save replaces the stored snapshot in a single transaction. Dates are
// stored as RFC 3339 nanosecond text with their original offset so they
// round-trip exactly.
func (d *DB) Save(snap model.Snapshot) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM tags"); err != nil {
		return err
	}

	for _, t := range snap.Tags {
		_, err := tx.Exec(`INSERT INTO tags (tag_id, name, color) VALUES (?, ?, ?)`,
			t.ID, t.Name, string(t.Color))
		if err != nil {
			return err
		}
	}

	for _, e := range snap.Expenses {
		_, err := tx.Exec(`INSERT INTO expenses
			(expense_id, name, amount, currency, date, tag_id)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Amount, string(e.Currency),
			e.Date.Format(time.RFC3339Nano), e.TagID)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`,
		settingDefaultCurrency, string(snap.DefaultCurrency))
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Load reads the full snapshot. A fresh database yields an empty snapshot
// with no default currency set.
func (d *DB) Load() (model.Snapshot, error) {
	var snap model.Snapshot

	rows, err := d.db.Query(`SELECT expense_id, name, amount, currency, date, tag_id
		FROM expenses ORDER BY rowid`)
	if err != nil {
		return snap, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var e model.Expense
		var currency, date string
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &currency, &date, &e.TagID); err != nil {
			return snap, err
		}
		e.Currency = model.Currency(currency)
		e.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return snap, fmt.Errorf("expense %s: parsing date %q: %w", e.ID, date, err)
		}
		snap.Expenses = append(snap.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	tagRows, err := d.db.Query(`SELECT tag_id, name, color FROM tags ORDER BY rowid`)
	if err != nil {
		return snap, err
	}
	defer func() { _ = tagRows.Close() }()

	for tagRows.Next() {
		var t model.Tag
		var color string
		if err := tagRows.Scan(&t.ID, &t.Name, &color); err != nil {
			return snap, err
		}
		t.Color = model.Color(color)
		snap.Tags = append(snap.Tags, t)
	}
	if err := tagRows.Err(); err != nil {
		return snap, err
	}

	var currency string
	err = d.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, settingDefaultCurrency).Scan(&currency)
	switch {
	case err == sql.ErrNoRows:
		// fresh database, store falls back to its default
	case err != nil:
		return snap, err
	default:
		snap.DefaultCurrency = model.Currency(currency)
	}

	return snap, nil
}
