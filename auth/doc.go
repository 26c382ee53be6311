// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides voter identity, session cookies, and the access
password gate.

# Voter Tokens

Voter tokens are random 16-byte (128-bit) secrets:

	token, err := auth.GenerateVoterToken()

Tokens are URL-safe base64 encoded. A token is minted once per browser
session, travels inside the session cookie, and is the unit of "one
vote per participant". It is never stored server-side on its own; it
only appears as a column value on vote rows.

# Sessions

Sessions are HS256-signed JWTs in an HttpOnly cookie (SessionCookie):

	signed, err := auth.EncodeSession(sess, cfg.SessionSecret)
	sess, err := auth.DecodeSession(signed, cfg.SessionSecret)

The session carries the voter token and a logged_in flag. Decoding
rejects tampered tokens and alg-substitution; an invalid cookie is
treated the same as a missing one.

# Password Gate

The whole API sits behind one shared password, verified against a
bcrypt hash from configuration:

	err := auth.CheckPassword(cfg.AdminPassHash, req.Password)

HashPassword exists for tests and setup tooling.
*/
package auth
