// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/daily-pick/auth"
	"github.com/danielhkuo/daily-pick/cliparse"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession decodes the session cookie and puts the session in the
// request context. A missing or invalid cookie gets a fresh session
// with a newly minted voter token, set on the response. Calling this
// on a request that already carries a valid session reuses it
// unchanged, so the voter token is stable for the cookie's lifetime.
func WithSession(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sess auth.Session
		if c, err := r.Cookie(auth.SessionCookie); err == nil {
			if s, err := auth.DecodeSession(c.Value, cfg.SessionSecret); err == nil {
				sess = s
			}
		}

		if sess.VoterToken == "" {
			token, err := auth.GenerateVoterToken()
			if err != nil {
				slog.Error("failed to generate voter token", "error", err)
				ErrorResponse(w, http.StatusInternalServerError, "Failed to establish session")
				return
			}
			sess.VoterToken = token
			if err := SetSessionCookie(w, sess, cfg); err != nil {
				slog.Error("failed to set session cookie", "error", err)
				ErrorResponse(w, http.StatusInternalServerError, "Failed to establish session")
				return
			}
		}

		next(w, RequestWithSession(r, sess))
	}
}

// RequireLogin rejects requests whose session has not passed the
// password gate. Must run inside WithSession.
func RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !SessionFrom(r).LoggedIn {
			ErrorResponse(w, http.StatusUnauthorized, "Login required")
			return
		}
		next(w, r)
	}
}

// SessionFrom returns the session attached to the request context, or
// the zero session if none is attached.
func SessionFrom(r *http.Request) auth.Session {
	sess, _ := r.Context().Value(sessionKey).(auth.Session)
	return sess
}

// RequestWithSession returns a shallow copy of r with the session in
// its context. Exported for handler tests.
func RequestWithSession(r *http.Request, sess auth.Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionKey, sess))
}

// SetSessionCookie signs the session and sets it on the response.
func SetSessionCookie(w http.ResponseWriter, sess auth.Session, cfg cliparse.Config) error {
	signed, err := auth.EncodeSession(sess, cfg.SessionSecret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
