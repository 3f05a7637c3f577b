// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3322)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminPIN: Shared admin PIN (required)
  - TimeZone: Reference time zone for vote timestamps (default: Asia/Yangon)

# CLI Flags

	-p         Server port
	-d         Database URL or file path
	-t         Database type
	-tz        Time zone
	-admin-pin Admin PIN

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TIME_ZONE     → -tz
	ADMIN_PIN     → -admin-pin

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if ADMIN_PIN is missing or DatabaseType is not
one of sqlite/postgres.
*/
package cliparse
