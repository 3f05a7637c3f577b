// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the shared-PIN admin check.

# Admin PIN

The administrator authenticates with a single shared PIN, configured via
ADMIN_PIN and compared in constant time:

	if err := auth.ValidatePIN(req.PIN, cfg.AdminPIN); err != nil { ... }

This is deliberately the whole authentication surface: the system has one
administrator role and no per-user accounts.
*/
package auth
