// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/crowncast/cliparse"
	"github.com/danielhkuo/crowncast/ledger"
	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/sysconfig"
	"github.com/danielhkuo/crowncast/testutil"
)

type testEnv struct {
	conn   *sql.DB
	store  *ledger.Store
	config *sysconfig.Store
	cfg    cliparse.Config
}

func setupEnv(t *testing.T, open bool, limit int) *testEnv {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	config := testutil.LoadTestSysconfig(t, conn, open, limit)
	return &testEnv{
		conn:   conn,
		store:  ledger.New(conn, config, time.UTC),
		config: config,
		cfg:    testutil.GetTestConfig(),
	}
}

func castVote(t *testing.T, h *VoteHandler, remoteAddr string, body models.CastVoteRequest) models.CastVoteResponse {
	t.Helper()

	req := testutil.MakeRequest("POST", "/api/vote", body, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()

	h.CastVote(w, req)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func TestCastVote_Success(t *testing.T) {
	env := setupEnv(t, true, 3)
	h := NewVoteHandler(env.store, nil)

	resp := castVote(t, h, "10.1.0.1:5000", models.CastVoteRequest{
		CandidateID: "k1", CategoryID: "KING", Fingerprint: "fp-a", HardwareID: "hw-a",
	})

	if !resp.Success {
		t.Fatalf("expected success, got error %s", resp.Error)
	}
}

func TestCastVote_SystemClosed(t *testing.T) {
	env := setupEnv(t, false, 3)
	h := NewVoteHandler(env.store, nil)

	resp := castVote(t, h, "10.1.0.1:5000", models.CastVoteRequest{
		CandidateID: "k1", CategoryID: "KING", Fingerprint: "fp-a",
	})

	if resp.Success || resp.Error != models.ReasonSystemClosed {
		t.Errorf("got (%v, %s), want SystemClosed rejection", resp.Success, resp.Error)
	}
}

func TestCastVote_InvalidCandidate(t *testing.T) {
	env := setupEnv(t, true, 3)
	h := NewVoteHandler(env.store, nil)

	// q1 exists but belongs to QUEEN
	resp := castVote(t, h, "10.1.0.1:5000", models.CastVoteRequest{
		CandidateID: "q1", CategoryID: "KING", Fingerprint: "fp-a",
	})

	if resp.Success || resp.Error != models.ReasonInvalidCandidate {
		t.Errorf("got (%v, %s), want InvalidCandidate rejection", resp.Success, resp.Error)
	}
}

func TestCastVote_AlreadyVotedCategory(t *testing.T) {
	env := setupEnv(t, true, 3)
	h := NewVoteHandler(env.store, nil)

	first := castVote(t, h, "10.1.0.1:5000", models.CastVoteRequest{
		CandidateID: "k1", CategoryID: "KING", Fingerprint: "fp-a",
	})
	if !first.Success {
		t.Fatalf("first vote failed: %s", first.Error)
	}

	// Same address and fingerprint, same category, different candidate.
	second := castVote(t, h, "10.1.0.1:6000", models.CastVoteRequest{
		CandidateID: "k2", CategoryID: "KING", Fingerprint: "fp-a",
	})
	if second.Success || second.Error != models.ReasonAlreadyVotedCategory {
		t.Errorf("got (%v, %s), want AlreadyVotedCategory rejection", second.Success, second.Error)
	}
}

func TestCastVote_RateLimitAcrossCategories(t *testing.T) {
	env := setupEnv(t, true, 1)
	h := NewVoteHandler(env.store, nil)

	first := castVote(t, h, "10.1.0.1:5000", models.CastVoteRequest{
		CandidateID: "k1", CategoryID: "KING", Fingerprint: "fp-a",
	})
	if !first.Success {
		t.Fatalf("first vote failed: %s", first.Error)
	}

	// Same address, different category: the address cap of 1 is hit.
	second := castVote(t, h, "10.1.0.1:6000", models.CastVoteRequest{
		CandidateID: "q1", CategoryID: "QUEEN", Fingerprint: "fp-a",
	})
	if second.Success || second.Error != models.ReasonRateLimitExceeded {
		t.Errorf("got (%v, %s), want RateLimitExceeded rejection", second.Success, second.Error)
	}
}

func TestCastVote_IdentityUnresolved(t *testing.T) {
	env := setupEnv(t, true, 3)
	h := NewVoteHandler(env.store, nil)

	resp := castVote(t, h, "", models.CastVoteRequest{
		CandidateID: "k1", CategoryID: "KING", Fingerprint: "fp-a",
	})

	if resp.Success || resp.Error != models.ReasonIdentityUnresolved {
		t.Errorf("got (%v, %s), want IdentityUnresolved rejection", resp.Success, resp.Error)
	}
}

func TestCastVote_MissingFields(t *testing.T) {
	env := setupEnv(t, true, 3)
	h := NewVoteHandler(env.store, nil)

	req := testutil.MakeRequest("POST", "/api/vote", models.CastVoteRequest{CandidateID: "k1"}, nil)
	w := httptest.NewRecorder()
	h.CastVote(w, req)

	testutil.AssertStatus(t, w, 400)
}
