// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http/httptest"
	"testing"
)

func TestResolve(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/vote", nil)
	req.RemoteAddr = "192.168.1.50:44321"

	id, err := Resolve(req, "fp-abc", "hw-xyz", "voter-1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if id.Address != "192.168.1.50" {
		t.Errorf("Address = %s, want 192.168.1.50 (port stripped)", id.Address)
	}
	if id.Fingerprint != "fp-abc" {
		t.Errorf("Fingerprint = %s, want fp-abc", id.Fingerprint)
	}
	if id.HardwareID != "hw-xyz" {
		t.Errorf("HardwareID = %s, want hw-xyz", id.HardwareID)
	}
	if id.VoterID != "voter-1" {
		t.Errorf("VoterID = %s, want voter-1", id.VoterID)
	}
}

func TestResolve_ForwardedFor(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/vote", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	id, err := Resolve(req, "fp", "hw", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if id.Address != "203.0.113.7" {
		t.Errorf("Address = %s, want first forwarded IP", id.Address)
	}
}

func TestResolve_FingerprintFallsBackToHardware(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/vote", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	id, err := Resolve(req, "  ", "hw-xyz", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if id.Fingerprint != "hw-xyz" {
		t.Errorf("Fingerprint = %s, want hardware fallback hw-xyz", id.Fingerprint)
	}
}

func TestResolve_AssignsVoterID(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/vote", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	id, err := Resolve(req, "fp", "hw", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if id.VoterID == "" {
		t.Error("VoterID should be assigned when the client sends none")
	}

	id2, _ := Resolve(req, "fp", "hw", "")
	if id.VoterID == id2.VoterID {
		t.Error("assigned VoterIDs should be unique")
	}
}

func TestResolve_NoAddress(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/vote", nil)
	req.RemoteAddr = ""

	if _, err := Resolve(req, "fp", "hw", ""); err != ErrUnresolved {
		t.Errorf("Resolve() error = %v, want ErrUnresolved", err)
	}
}
