// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/daily-pick/auth"
	"github.com/danielhkuo/daily-pick/models"
	"github.com/danielhkuo/daily-pick/testutil"
)

// client is a minimal cookie-carrying test client over a ServeMux
type client struct {
	t       *testing.T
	mux     *http.ServeMux
	cookies []*http.Cookie
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	req := testutil.MakeRequest(method, path, body, nil)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.mux.ServeHTTP(w, req)

	// Adopt any session cookie the server sets
	for _, ck := range w.Result().Cookies() {
		if ck.Name == auth.SessionCookie {
			c.cookies = []*http.Cookie{{Name: ck.Name, Value: ck.Value}}
		}
	}
	return w
}

func (c *client) login(t *testing.T) {
	t.Helper()
	w := c.do("POST", "/login", models.LoginRequest{Password: testutil.TestPassword})
	testutil.AssertStatus(t, w, 200)
}

// TestFullVotingFlow walks the whole surface end to end: password
// gate, proposing, duplicate rejection, voting, double-vote rejection,
// and per-voter voted_by_me.
func TestFullVotingFlow(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// Midnight reset: the wipe fires once on the first request, while
	// the ledger is still empty, and stays quiet for the rest of the
	// test run.
	cfg := testutil.GetTestConfig()
	cfg.ResetTime = "00:00:00"
	mux := NewRouter(conn, cfg)

	alice := &client{t: t, mux: mux}
	bob := &client{t: t, mux: mux}

	// The gate is closed until login
	testutil.AssertStatus(t, alice.do("GET", "/api/items", nil), 401)

	w := alice.do("POST", "/login", models.LoginRequest{Password: "wrong"})
	testutil.AssertStatus(t, w, 401)

	alice.login(t)
	bob.login(t)

	// Empty board
	w = alice.do("GET", "/api/items", nil)
	testutil.AssertStatus(t, w, 200)
	var views []models.ItemView
	testutil.AssertJSON(t, w, &views)
	if len(views) != 0 {
		t.Fatalf("expected empty board, got %d items", len(views))
	}

	// Alice proposes
	w = alice.do("POST", "/api/items", models.AddItemRequest{Name: "Pizza"})
	testutil.AssertStatus(t, w, 201)
	var added models.AddItemResponse
	testutil.AssertJSON(t, w, &added)

	// Bob's duplicate (different case, extra whitespace) is rejected
	w = bob.do("POST", "/api/items", models.AddItemRequest{Name: "  pizza "})
	testutil.AssertStatus(t, w, 409)

	// Both vote; Bob's second attempt is an explicit conflict
	w = alice.do("POST", "/api/items/"+added.ID+"/vote", nil)
	testutil.AssertStatus(t, w, 200)

	w = bob.do("POST", "/api/items/"+added.ID+"/vote", nil)
	testutil.AssertStatus(t, w, 200)
	var voted models.VoteResponse
	testutil.AssertJSON(t, w, &voted)
	if voted.Votes != 2 {
		t.Errorf("expected tally 2, got %d", voted.Votes)
	}

	testutil.AssertStatus(t, bob.do("POST", "/api/items/"+added.ID+"/vote", nil), 409)

	// Fresh participant sees the tally but voted_by_me is false
	carol := &client{t: t, mux: mux}
	carol.login(t)

	w = carol.do("GET", "/api/items", nil)
	testutil.AssertStatus(t, w, 200)
	testutil.AssertJSON(t, w, &views)
	if len(views) != 1 {
		t.Fatalf("expected 1 item, got %d", len(views))
	}
	if views[0].Votes != 2 {
		t.Errorf("expected tally 2, got %d", views[0].Votes)
	}
	if views[0].VotedByMe {
		t.Error("carol has not voted; voted_by_me should be false")
	}

	// Voters see their own mark
	w = bob.do("GET", "/api/items", nil)
	testutil.AssertJSON(t, w, &views)
	if !views[0].VotedByMe {
		t.Error("bob voted; voted_by_me should be true")
	}
}
