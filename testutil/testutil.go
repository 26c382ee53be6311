// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/daily-pick/auth"
	"github.com/danielhkuo/daily-pick/cliparse"
	"github.com/danielhkuo/daily-pick/db"
)

// TestPassword is the plaintext matching GetTestConfig's AdminPassHash.
const TestPassword = "test-password"

var (
	testHashOnce sync.Once
	testHash     string
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema. Each test gets its own file, so tests are
// isolated and can run in parallel.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := db.SqliteDSN(filepath.Join(t.TempDir(), "test.db"))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	testHashOnce.Do(func() {
		h, err := auth.HashPassword(TestPassword)
		if err != nil {
			panic(err)
		}
		testHash = h
	})
	return cliparse.Config{
		Port:          8080,
		DatabaseURL:   "test.db",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		AdminPassHash: testHash,
		ResetTZ:       "UTC",
		ResetTime:     "18:00:00",
	}
}

// CreateTestItem inserts an item and returns its ID
func CreateTestItem(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	itemID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO item (id, name, votes, created_at)
		VALUES ($1, $2, 0, $3)
	`, itemID, name, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}

	return itemID
}

// CastTestVote inserts a vote row and bumps the item counter, the same
// way the engine does on success
func CastTestVote(t *testing.T, conn *sql.DB, itemID, voterToken string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (id, item_id, voter_token, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), itemID, voterToken, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
	_, err = conn.Exec(`UPDATE item SET votes = votes + 1 WHERE id = $1`, itemID)
	if err != nil {
		t.Fatalf("Failed to bump test vote count: %v", err)
	}
}

// CountRows counts rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return n
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
