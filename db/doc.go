// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the chosen driver:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes,
and seeds the system_config singleton only when absent.

# Tables

  - vote_event: the append-only vote ledger
  - system_config: the open/closed flag and per-IP vote limit (one row, id=1)

# Constraints

vote_event carries UNIQUE (category_id, ip_address, fingerprint). The ledger
serializes appends and checks admission inside a transaction; this constraint
is the durable backstop that makes a double-admit impossible even if that
serialization is ever broken.

system_config bounds max_votes_per_ip to 1..20 at the storage layer, matching
the validation in package sysconfig.

# Drivers

SQLite (modernc.org/sqlite) is the default store; PostgreSQL (lib/pq) is
selected with DATABASE_TYPE=postgres. The schemas differ only in the id
column (AUTOINCREMENT vs BIGSERIAL).
*/
package db
