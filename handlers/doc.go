// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the crowncast API.

# Handler Types

Each handler is a struct with its domain dependencies injected via a
constructor:

  - VoteHandler: vote submission (identity resolution + ledger append)
  - StatsHandler: live counts, tally summary, paginated vote logs
  - SystemHandler: open/closed flag and per-IP limit (admin writes)
  - AdminHandler: shared-PIN login and the full ledger reset

# Voting Flow

	POST /api/vote → CastVote

The server resolves the voter identity from the request (client IP) plus the
client-supplied fingerprint fields in the body, then asks the ledger to
append. Admission rejections return 200 with success=false and a reason
code - they are outcomes, not errors. Only storage failures are 500.

# Dashboard Flow

	GET  /api/vote-stats     → per-candidate counts, zero-filled
	GET  /api/tally-summary  → per-category totals, leader, margin
	GET  /api/vote-logs      → paginated audit log, newest first
	GET  /api/system-status  → current gate and limit

# Admin Operations

	POST /api/admin-auth     → PIN check for the dashboard login
	POST /api/system-status  → toggle gate or set limit (X-Admin-Pin)
	POST /api/admin-reset    → wipe the ledger (X-Admin-Pin)

Admin mutations require the X-Admin-Pin header; the PIN is the system's
only credential.
*/
package handlers
