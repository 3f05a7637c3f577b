// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus counters for the vote pipeline.

	svc, handler := metrics.NewService()
	mux.Handle("GET /metrics", handler)

Counters: admitted votes, rejected votes by reason code, ledger wipes,
config updates, internal errors. A nil *Service is safe to call, so tests
that don't care about metrics pass nil.
*/
package metrics
