// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/crowncast/cliparse"
	"github.com/danielhkuo/crowncast/db"
	"github.com/danielhkuo/crowncast/sysconfig"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir with
// the full schema applied. The file is removed with the test's temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "crowncast_test.db")
	conn, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3322,
		DatabaseType: "sqlite",
		AdminPIN:     "135790",
		TimeZone:     "Asia/Yangon",
	}
}

// LoadTestSysconfig loads the seeded config singleton, optionally opening
// the voting gate and setting a limit first.
func LoadTestSysconfig(t *testing.T, conn *sql.DB, open bool, limit int) *sysconfig.Store {
	t.Helper()

	store, err := sysconfig.Load(context.Background(), conn)
	if err != nil {
		t.Fatalf("Failed to load system config: %v", err)
	}
	if open {
		if _, err := store.SetOpen(context.Background(), true); err != nil {
			t.Fatalf("Failed to open voting: %v", err)
		}
	}
	if limit > 0 {
		if _, err := store.SetLimit(context.Background(), limit); err != nil {
			t.Fatalf("Failed to set vote limit: %v", err)
		}
	}
	return store
}

// InsertTestVote writes a vote event row directly, bypassing admission.
// Useful for seeding ledger state in query/tally tests.
func InsertTestVote(t *testing.T, conn *sql.DB, candidateID, categoryID, address, fingerprint string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote_event (candidate_id, category_id, ip_address, fingerprint, hardware_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, 'hw-test', 'voter-test', $5)
	`, candidateID, categoryID, address, fingerprint, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
