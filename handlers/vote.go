// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowncast/admission"
	"github.com/danielhkuo/crowncast/identity"
	"github.com/danielhkuo/crowncast/ledger"
	"github.com/danielhkuo/crowncast/metrics"
	"github.com/danielhkuo/crowncast/middleware"
	"github.com/danielhkuo/crowncast/models"
)

type VoteHandler struct {
	ledger  *ledger.Store
	metrics *metrics.Service
}

func NewVoteHandler(ledger *ledger.Store, metrics *metrics.Service) *VoteHandler {
	return &VoteHandler{ledger: ledger, metrics: metrics}
}

// CastVote handles POST /api/vote
//
// Rejections are expected outcomes and come back as 200 with success=false
// and the reason code; the client surfaces the reason to the voter verbatim.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CandidateID == "" || req.CategoryID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidateId and categoryId are required")
		return
	}

	id, err := identity.Resolve(r, req.Fingerprint, req.HardwareID, req.VoterID)
	if err != nil {
		if errors.Is(err, identity.ErrUnresolved) {
			h.metrics.VoteRejected(models.ReasonIdentityUnresolved)
			middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
				Success: false,
				Error:   models.ReasonIdentityUnresolved,
			})
			return
		}
		slog.Error("failed to resolve identity", "error", err)
		h.metrics.InternalError()
		middleware.JSONResponse(w, http.StatusInternalServerError, models.CastVoteResponse{
			Success: false,
			Error:   models.ReasonInternal,
		})
		return
	}

	_, err = h.ledger.Append(r.Context(), ledger.AppendRequest{
		CandidateID: req.CandidateID,
		CategoryID:  req.CategoryID,
		Identity:    id,
	})
	if err != nil {
		if rej, ok := admission.AsRejection(err); ok {
			h.metrics.VoteRejected(rej.Reason)
			slog.Info("vote rejected",
				"reason", rej.Reason,
				"candidate", req.CandidateID,
				"category", req.CategoryID,
			)
			middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
				Success: false,
				Error:   rej.Reason,
			})
			return
		}

		// Storage failure: generic Internal, no detail leaked, no automatic
		// retry (a post-commit failure retried would double-admit).
		slog.Error("failed to append vote", "error", err)
		h.metrics.InternalError()
		middleware.JSONResponse(w, http.StatusInternalServerError, models.CastVoteResponse{
			Success: false,
			Error:   models.ReasonInternal,
		})
		return
	}

	h.metrics.VoteAdmitted()
	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{Success: true})
}
