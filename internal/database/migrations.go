package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the card store schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS columns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// One row per card: the primary key keeps a card in a single column,
	// the unique pair keeps positions collision free within a column
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS card_positions (
			card_id INTEGER PRIMARY KEY,
			column_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			UNIQUE (column_id, position),
			FOREIGN KEY (card_id) REFERENCES cards(id),
			FOREIGN KEY (column_id) REFERENCES columns(id)
		)
	`)
	if err != nil {
		return err
	}

	// Running totals of committed card operations, written in the same
	// transaction as the operation they count
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS op_counters (
			name TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	return nil
}

// seedDefaultColumns inserts default columns if the columns table is empty
func seedDefaultColumns(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM columns").Scan(&count)
	if err != nil {
		return err
	}

	// If columns exist, don't seed
	if count > 0 {
		return nil
	}

	for _, name := range []string{"Backlog", "In Progress"} {
		if _, err := db.ExecContext(ctx, "INSERT INTO columns (name) VALUES (?)", name); err != nil {
			return err
		}
	}

	return nil
}
