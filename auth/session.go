// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the cookie carrying the signed session.
const SessionCookie = "session"

// Session is the per-browser state carried in the signed cookie: the
// opaque voter token and whether the password gate has been passed.
type Session struct {
	VoterToken string
	LoggedIn   bool
}

// EncodeSession signs a session into a compact JWS string (HS256).
func EncodeSession(s Session, secret string) (string, error) {
	claims := jwt.MapClaims{
		"voter_token": s.VoterToken,
		"logged_in":   s.LoggedIn,
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Join(ErrInvalidSession, err)
	}
	return signed, nil
}

// DecodeSession verifies a signed session string and extracts the
// session. Any tampering, wrong algorithm, or malformed claim yields
// ErrInvalidSession; callers treat that as "no session" and mint a
// fresh one.
func DecodeSession(signed, secret string) (Session, error) {
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidSession
	}

	voterToken, ok := claims["voter_token"].(string)
	if !ok || voterToken == "" {
		return Session{}, ErrInvalidSession
	}

	loggedIn, _ := claims["logged_in"].(bool)

	return Session{VoterToken: voterToken, LoggedIn: loggedIn}, nil
}
