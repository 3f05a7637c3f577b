// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/testutil"
)

func TestAdminAuth(t *testing.T) {
	env := setupEnv(t, false, 0)
	h := NewAdminHandler(env.store, env.cfg, nil)

	tests := []struct {
		name       string
		pin        string
		wantStatus int
		wantOK     bool
	}{
		{"correct pin", env.cfg.AdminPIN, 200, true},
		{"wrong pin", "000000", 401, false},
		{"empty pin", "", 401, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin-auth", models.AdminAuthRequest{PIN: tt.pin}, nil)
			w := httptest.NewRecorder()
			h.Auth(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			var resp models.AdminAuthResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Success != tt.wantOK {
				t.Errorf("Success = %v, want %v", resp.Success, tt.wantOK)
			}
		})
	}
}

func TestAdminReset(t *testing.T) {
	env := setupEnv(t, true, 20)
	h := NewAdminHandler(env.store, env.cfg, nil)

	testutil.InsertTestVote(t, env.conn, "k1", "KING", "10.0.0.1", "fp-a")
	testutil.InsertTestVote(t, env.conn, "q1", "QUEEN", "10.0.0.2", "fp-b")
	testutil.InsertTestVote(t, env.conn, "m1", "MISTER", "10.0.0.3", "fp-c")

	req := testutil.MakeRequest("POST", "/api/admin-reset", nil, adminHeaders(env))
	w := httptest.NewRecorder()
	h.Reset(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.AdminResetResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.Deleted != 3 {
		t.Errorf("got (%v, deleted=%d), want 3 deletions", resp.Success, resp.Deleted)
	}

	var remaining int
	if err := env.conn.QueryRow(`SELECT COUNT(*) FROM vote_event`).Scan(&remaining); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if remaining != 0 {
		t.Errorf("ledger has %d rows after reset", remaining)
	}
}

func TestAdminReset_RequiresPIN(t *testing.T) {
	env := setupEnv(t, true, 20)
	h := NewAdminHandler(env.store, env.cfg, nil)

	testutil.InsertTestVote(t, env.conn, "k1", "KING", "10.0.0.1", "fp-a")

	req := testutil.MakeRequest("POST", "/api/admin-reset", nil, nil)
	w := httptest.NewRecorder()
	h.Reset(w, req)

	testutil.AssertStatus(t, w, 401)

	var remaining int
	if err := env.conn.QueryRow(`SELECT COUNT(*) FROM vote_event`).Scan(&remaining); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if remaining != 1 {
		t.Error("unauthorized reset must not touch the ledger")
	}
}
