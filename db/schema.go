// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/crowncast/models"
)

// CreateSchema creates all tables needed for the service.
// Safe to call multiple times - uses IF NOT EXISTS.
// driver is "sqlite" or "postgres"; id generation differs between the two.
func CreateSchema(db *sql.DB, driver string) error {
	var schema string
	switch driver {
	case "postgres":
		schema = schemaPostgres
	case "sqlite":
		schema = schemaSQLite
	default:
		return fmt.Errorf("unsupported driver: %s", driver)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed the config singleton. Voting starts closed.
	_, err := db.Exec(`
		INSERT INTO system_config (id, is_open, max_votes_per_ip)
		VALUES (1, FALSE, $1)
		ON CONFLICT (id) DO NOTHING
	`, models.DefaultMaxVotesPerIP)
	if err != nil {
		return fmt.Errorf("failed to seed system config: %w", err)
	}

	return nil
}

const schemaSQLite = `
-- Vote ledger: append-only, one row per admitted vote.
-- UNIQUE(category_id, ip_address, fingerprint) is the durable backstop for
-- the one-vote-per-identity-per-category invariant.
CREATE TABLE IF NOT EXISTS vote_event (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    candidate_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    ip_address TEXT NOT NULL,
    fingerprint TEXT NOT NULL,
    hardware_id TEXT NOT NULL DEFAULT '',
    voter_id TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    UNIQUE (category_id, ip_address, fingerprint)
);

CREATE INDEX IF NOT EXISTS idx_vote_event_category ON vote_event(category_id);
CREATE INDEX IF NOT EXISTS idx_vote_event_ip ON vote_event(ip_address);
CREATE INDEX IF NOT EXISTS idx_vote_event_candidate ON vote_event(candidate_id);

-- System configuration singleton (always id = 1)
CREATE TABLE IF NOT EXISTS system_config (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    is_open BOOLEAN NOT NULL DEFAULT FALSE,
    max_votes_per_ip INTEGER NOT NULL DEFAULT 3
        CHECK (max_votes_per_ip BETWEEN 1 AND 20)
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS vote_event (
    id BIGSERIAL PRIMARY KEY,
    candidate_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    ip_address TEXT NOT NULL,
    fingerprint TEXT NOT NULL,
    hardware_id TEXT NOT NULL DEFAULT '',
    voter_id TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    UNIQUE (category_id, ip_address, fingerprint)
);

CREATE INDEX IF NOT EXISTS idx_vote_event_category ON vote_event(category_id);
CREATE INDEX IF NOT EXISTS idx_vote_event_ip ON vote_event(ip_address);
CREATE INDEX IF NOT EXISTS idx_vote_event_candidate ON vote_event(candidate_id);

CREATE TABLE IF NOT EXISTS system_config (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    is_open BOOLEAN NOT NULL DEFAULT FALSE,
    max_votes_per_ip INTEGER NOT NULL DEFAULT 3
        CHECK (max_votes_per_ip BETWEEN 1 AND 20)
);
`
