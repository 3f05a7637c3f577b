// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the crowncast API server.

Crowncast is the vote-ingestion and anti-fraud service for a single-day
campus crowning event: attendees cast one vote per award category, an
administrator watches live tallies and can open or close voting and tune
the per-IP vote limit.

# Starting the Server

	ADMIN_PIN=135790 go run main.go

Or with flags:

	go run main.go -p 3322 -d crowncast.db -admin-pin 135790

# Configuration

Required settings:

  - ADMIN_PIN (-admin-pin): Shared admin PIN

Optional settings:

  - PORT (-p): Server port (default: 3322)
  - DATABASE_URL (-d): SQLite file path or Postgres URL (default: crowncast.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TIME_ZONE (-tz): Reference zone for vote timestamps (default: Asia/Yangon)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (vote, stats, system, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, client IP extraction
  - models: Request/response types and reason codes
  - roster: Immutable candidate/category reference data
  - identity: Per-request voter identity resolution
  - admission: Ordered admit/reject policy
  - ledger: Append-only durable vote store (the source of truth)
  - tally: Deterministic standings computation
  - sysconfig: Open/closed gate and vote limit singleton
  - poller: Client-side polling coordinator for dashboard sessions
  - metrics: Prometheus counters
  - auth: Shared-PIN check
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
