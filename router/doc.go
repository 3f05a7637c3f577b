// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires URL patterns to handlers using Go 1.22+ method routing.

	mux := router.NewRouter(store, config, cfg, ms, metricsHandler)

All API routes are wrapped in request logging; CORS is applied once around
the whole mux in main. GET and POST on /api/system-status dispatch to
different handlers: the read is public, the write is admin-only.
*/
package router
