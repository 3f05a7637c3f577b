// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/testutil"
)

func adminHeaders(env *testEnv) map[string]string {
	return map[string]string{"X-Admin-Pin": env.cfg.AdminPIN}
}

func TestGetStatus(t *testing.T) {
	env := setupEnv(t, false, 0)
	h := NewSystemHandler(env.config, env.cfg, nil)

	req := testutil.MakeRequest("GET", "/api/system-status", nil, nil)
	w := httptest.NewRecorder()
	h.GetStatus(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.SystemStatusResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.IsOpen {
		t.Error("voting should start closed")
	}
	if resp.MaxVotesPerIP != models.DefaultMaxVotesPerIP {
		t.Errorf("MaxVotesPerIP = %d, want default %d", resp.MaxVotesPerIP, models.DefaultMaxVotesPerIP)
	}
}

func TestUpdateStatus_ToggleOpen(t *testing.T) {
	env := setupEnv(t, false, 0)
	h := NewSystemHandler(env.config, env.cfg, nil)

	open := true
	req := testutil.MakeRequest("POST", "/api/system-status",
		models.UpdateSystemRequest{IsOpen: &open}, adminHeaders(env))
	w := httptest.NewRecorder()
	h.UpdateStatus(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.SystemStatusResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || !resp.IsOpen {
		t.Errorf("got (%v, isOpen=%v), want opened", resp.Success, resp.IsOpen)
	}

	if !env.config.Get().IsOpen {
		t.Error("store should reflect the new gate immediately")
	}
}

func TestUpdateStatus_SetLimit(t *testing.T) {
	env := setupEnv(t, false, 0)
	h := NewSystemHandler(env.config, env.cfg, nil)

	limit := 5
	req := testutil.MakeRequest("POST", "/api/system-status",
		models.UpdateSystemRequest{NewMaxVotes: &limit}, adminHeaders(env))
	w := httptest.NewRecorder()
	h.UpdateStatus(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.SystemStatusResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.MaxVotesPerIP != 5 {
		t.Errorf("got (%v, %d), want limit 5", resp.Success, resp.MaxVotesPerIP)
	}
	if env.config.Get().MaxVotesPerIP != 5 {
		t.Error("Get() should reflect 5 immediately after SetLimit")
	}
}

func TestUpdateStatus_LimitBounds(t *testing.T) {
	env := setupEnv(t, false, 0)
	h := NewSystemHandler(env.config, env.cfg, nil)

	for _, bad := range []int{0, 21, -3} {
		limit := bad
		req := testutil.MakeRequest("POST", "/api/system-status",
			models.UpdateSystemRequest{NewMaxVotes: &limit}, adminHeaders(env))
		w := httptest.NewRecorder()
		h.UpdateStatus(w, req)

		testutil.AssertStatus(t, w, 400)

		var resp models.SystemStatusResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Success || resp.Error != models.ReasonInvalidConfig {
			t.Errorf("limit %d: got (%v, %s), want InvalidConfig", bad, resp.Success, resp.Error)
		}
	}

	// Prior value retained after the failed updates.
	if got := env.config.Get().MaxVotesPerIP; got != models.DefaultMaxVotesPerIP {
		t.Errorf("limit changed to %d after rejected updates", got)
	}
}

func TestUpdateStatus_ExactlyOneField(t *testing.T) {
	env := setupEnv(t, false, 0)
	h := NewSystemHandler(env.config, env.cfg, nil)

	open := true
	limit := 5

	// Both fields
	req := testutil.MakeRequest("POST", "/api/system-status",
		models.UpdateSystemRequest{IsOpen: &open, NewMaxVotes: &limit}, adminHeaders(env))
	w := httptest.NewRecorder()
	h.UpdateStatus(w, req)
	testutil.AssertStatus(t, w, 400)

	// Neither field
	req = testutil.MakeRequest("POST", "/api/system-status",
		models.UpdateSystemRequest{}, adminHeaders(env))
	w = httptest.NewRecorder()
	h.UpdateStatus(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestUpdateStatus_RequiresPIN(t *testing.T) {
	env := setupEnv(t, false, 0)
	h := NewSystemHandler(env.config, env.cfg, nil)

	open := true
	req := testutil.MakeRequest("POST", "/api/system-status",
		models.UpdateSystemRequest{IsOpen: &open}, map[string]string{"X-Admin-Pin": "wrong"})
	w := httptest.NewRecorder()
	h.UpdateStatus(w, req)

	testutil.AssertStatus(t, w, 401)
	if env.config.Get().IsOpen {
		t.Error("unauthorized request must not mutate config")
	}
}
