// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/crowncast/ledger"
	"github.com/danielhkuo/crowncast/metrics"
	"github.com/danielhkuo/crowncast/middleware"
	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/roster"
	"github.com/danielhkuo/crowncast/tally"
)

type StatsHandler struct {
	ledger  *ledger.Store
	metrics *metrics.Service
}

func NewStatsHandler(ledger *ledger.Store, metrics *metrics.Service) *StatsHandler {
	return &StatsHandler{ledger: ledger, metrics: metrics}
}

// GetVoteStats handles GET /api/vote-stats
// Returns candidateId -> count for every roster candidate, zero-filled.
func (h *StatsHandler) GetVoteStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.ledger.AllCounts(r.Context())
	if err != nil {
		slog.Error("failed to load vote counts", "error", err)
		h.metrics.InternalError()
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternal)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// GetTallySummary handles GET /api/tally-summary
// The dashboard's one-call view: per-category totals, leader, margin.
func (h *StatsHandler) GetTallySummary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.ledger.AllCounts(r.Context())
	if err != nil {
		slog.Error("failed to load vote counts", "error", err)
		h.metrics.InternalError()
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternal)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally.Compute(counts))
}

// GetVoteLogs handles GET /api/vote-logs?page&pageSize&category
// Newest first; total reflects the filtered set.
func (h *StatsHandler) GetVoteLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	if pageSize < 1 {
		pageSize = ledger.DefaultPageSize
	}

	var filter ledger.Filter
	if category := q.Get("category"); category != "" {
		if _, ok := roster.CategoryByID(category); !ok {
			middleware.ErrorResponse(w, http.StatusNotFound, models.ReasonNotFound)
			return
		}
		filter.CategoryID = category
	}

	events, total, err := h.ledger.Query(r.Context(), filter, page, pageSize)
	if err != nil {
		slog.Error("failed to query vote logs", "error", err)
		h.metrics.InternalError()
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternal)
		return
	}

	if pageSize > ledger.MaxPageSize {
		pageSize = ledger.MaxPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteLogsResponse{
		Logs: events,
		Pagination: models.Pagination{
			Page:  page,
			Pages: pages,
			Total: total,
		},
	})
}
