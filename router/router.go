// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/crowncast/cliparse"
	"github.com/danielhkuo/crowncast/handlers"
	"github.com/danielhkuo/crowncast/ledger"
	"github.com/danielhkuo/crowncast/metrics"
	"github.com/danielhkuo/crowncast/middleware"
	"github.com/danielhkuo/crowncast/sysconfig"
)

func NewRouter(store *ledger.Store, config *sysconfig.Store, cfg cliparse.Config, ms *metrics.Service, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(store, ms)
	statsHandler := handlers.NewStatsHandler(store, ms)
	systemHandler := handlers.NewSystemHandler(config, cfg, ms)
	adminHandler := handlers.NewAdminHandler(store, cfg, ms)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting (public)
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(voteHandler.CastVote))

	// Dashboard reads (public)
	mux.HandleFunc("GET /api/vote-stats", middleware.WithLogging(statsHandler.GetVoteStats))
	mux.HandleFunc("GET /api/tally-summary", middleware.WithLogging(statsHandler.GetTallySummary))
	mux.HandleFunc("GET /api/vote-logs", middleware.WithLogging(statsHandler.GetVoteLogs))
	mux.HandleFunc("GET /api/system-status", middleware.WithLogging(systemHandler.GetStatus))

	// Admin operations
	mux.HandleFunc("POST /api/admin-auth", middleware.WithLogging(adminHandler.Auth))
	mux.HandleFunc("POST /api/system-status", middleware.WithLogging(systemHandler.UpdateStatus))
	mux.HandleFunc("POST /api/admin-reset", middleware.WithLogging(adminHandler.Reset))

	// Prometheus metrics
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("crowncast API v1"))
	})

	return mux
}
