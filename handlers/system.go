// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowncast/auth"
	"github.com/danielhkuo/crowncast/cliparse"
	"github.com/danielhkuo/crowncast/metrics"
	"github.com/danielhkuo/crowncast/middleware"
	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/sysconfig"
)

type SystemHandler struct {
	config  *sysconfig.Store
	cfg     cliparse.Config
	metrics *metrics.Service
}

func NewSystemHandler(config *sysconfig.Store, cfg cliparse.Config, metrics *metrics.Service) *SystemHandler {
	return &SystemHandler{config: config, cfg: cfg, metrics: metrics}
}

// GetStatus handles GET /api/system-status
// Public: the voting UI reads this to show the closed banner.
func (h *SystemHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	cfg := h.config.Get()
	middleware.JSONResponse(w, http.StatusOK, models.SystemStatusResponse{
		Success:       true,
		IsOpen:        cfg.IsOpen,
		MaxVotesPerIP: cfg.MaxVotesPerIP,
	})
}

// UpdateStatus handles POST /api/system-status
// Admin-only. Exactly one of isOpen / newMaxVotes per call.
func (h *SystemHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpdateSystemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	cur := h.config.Get()

	if (req.IsOpen == nil) == (req.NewMaxVotes == nil) {
		// Both present or both absent.
		middleware.JSONResponse(w, http.StatusBadRequest, models.SystemStatusResponse{
			Success:       false,
			IsOpen:        cur.IsOpen,
			MaxVotesPerIP: cur.MaxVotesPerIP,
			Error:         models.ReasonInvalidConfig,
		})
		return
	}

	var (
		updated models.SystemConfig
		err     error
	)
	if req.IsOpen != nil {
		updated, err = h.config.SetOpen(r.Context(), *req.IsOpen)
	} else {
		updated, err = h.config.SetLimit(r.Context(), *req.NewMaxVotes)
	}

	if err != nil {
		if errors.Is(err, sysconfig.ErrInvalidConfig) {
			middleware.JSONResponse(w, http.StatusBadRequest, models.SystemStatusResponse{
				Success:       false,
				IsOpen:        cur.IsOpen,
				MaxVotesPerIP: cur.MaxVotesPerIP,
				Error:         models.ReasonInvalidConfig,
			})
			return
		}
		slog.Error("failed to update system config", "error", err)
		h.metrics.InternalError()
		middleware.JSONResponse(w, http.StatusInternalServerError, models.SystemStatusResponse{
			Success:       false,
			IsOpen:        cur.IsOpen,
			MaxVotesPerIP: cur.MaxVotesPerIP,
			Error:         models.ReasonInternal,
		})
		return
	}

	h.metrics.ConfigUpdated()
	slog.Info("system config updated", "is_open", updated.IsOpen, "max_votes_per_ip", updated.MaxVotesPerIP)

	middleware.JSONResponse(w, http.StatusOK, models.SystemStatusResponse{
		Success:       true,
		IsOpen:        updated.IsOpen,
		MaxVotesPerIP: updated.MaxVotesPerIP,
	})
}

func (h *SystemHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	pin := r.Header.Get("X-Admin-Pin")
	if err := auth.ValidatePIN(pin, h.cfg.AdminPIN); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Pin header required")
		return false
	}
	return true
}
