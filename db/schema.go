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
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Polls
-- owner_id and is_active are nullable: rows created before ownership
-- and status tracking existed have NULL in both, which readers treat
-- as "unowned" and "active".
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    options TEXT[] NOT NULL CHECK (cardinality(options) >= 2),
    votes INTEGER[] NOT NULL CHECK (cardinality(votes) = cardinality(options)),
    owner_id TEXT REFERENCES app_user(id),
    is_active BOOLEAN,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_poll_owner_id ON poll(owner_id);
CREATE INDEX IF NOT EXISTS idx_poll_created_at ON poll(created_at DESC);

-- Voter set: the primary key enforces one vote per user per poll.
CREATE TABLE IF NOT EXISTS poll_voter (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES app_user(id),
    voted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (poll_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_poll_voter_poll_id ON poll_voter(poll_id);
`
