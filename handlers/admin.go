// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowncast/auth"
	"github.com/danielhkuo/crowncast/cliparse"
	"github.com/danielhkuo/crowncast/ledger"
	"github.com/danielhkuo/crowncast/metrics"
	"github.com/danielhkuo/crowncast/middleware"
	"github.com/danielhkuo/crowncast/models"
)

type AdminHandler struct {
	ledger  *ledger.Store
	cfg     cliparse.Config
	metrics *metrics.Service
}

func NewAdminHandler(ledger *ledger.Store, cfg cliparse.Config, metrics *metrics.Service) *AdminHandler {
	return &AdminHandler{ledger: ledger, cfg: cfg, metrics: metrics}
}

// Auth handles POST /api/admin-auth
// The shared-PIN gate for the dashboard login screen.
func (h *AdminHandler) Auth(w http.ResponseWriter, r *http.Request) {
	var req models.AdminAuthRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.ValidatePIN(req.PIN, h.cfg.AdminPIN); err != nil {
		middleware.JSONResponse(w, http.StatusUnauthorized, models.AdminAuthResponse{Success: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminAuthResponse{Success: true})
}

// Reset handles POST /api/admin-reset
// Irreversible full wipe of the vote ledger. The dashboard confirms with
// the administrator before calling; the server only checks the PIN.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	pin := r.Header.Get("X-Admin-Pin")
	if err := auth.ValidatePIN(pin, h.cfg.AdminPIN); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Pin header required")
		return
	}

	deleted, err := h.ledger.WipeAll(r.Context())
	if err != nil {
		slog.Error("failed to wipe ledger", "error", err)
		h.metrics.InternalError()
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternal)
		return
	}

	h.metrics.LedgerWiped()
	middleware.JSONResponse(w, http.StatusOK, models.AdminResetResponse{
		Success: true,
		Deleted: deleted,
	})
}
