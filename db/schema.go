// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Items
CREATE TABLE IF NOT EXISTS item (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

-- Case-insensitive name uniqueness across live items
CREATE UNIQUE INDEX IF NOT EXISTS uix_item_name_ci ON item (LOWER(name));

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL REFERENCES item(id) ON DELETE CASCADE,
    voter_token TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (item_id, voter_token)
);

CREATE INDEX IF NOT EXISTS idx_vote_item_id ON vote(item_id);
CREATE INDEX IF NOT EXISTS idx_vote_voter_token ON vote(voter_token);
`
