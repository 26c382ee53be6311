// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/daily-pick/auth"
	"github.com/danielhkuo/daily-pick/cliparse"
	"github.com/danielhkuo/daily-pick/middleware"
	"github.com/danielhkuo/daily-pick/models"
)

type SessionHandler struct {
	cfg cliparse.Config
}

func NewSessionHandler(cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{cfg: cfg}
}

// Login handles POST /login. On the right password it re-issues the
// session cookie with the logged_in flag set, keeping the same voter
// token so votes cast after login still belong to the same session.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPassword(h.cfg.AdminPassHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect password")
		return
	}

	sess := middleware.SessionFrom(r)
	sess.LoggedIn = true
	if err := middleware.SetSessionCookie(w, sess, h.cfg); err != nil {
		slog.Error("failed to set session cookie", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("login succeeded")

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Ok: true})
}

// Logout handles POST /logout. Clearing the cookie drops the voter
// token with it; the next request starts a fresh anonymous session.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Ok: true})
}
