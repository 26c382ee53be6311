// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response
helpers.

# Session

WithSession is the identity layer: it decodes the session cookie, or
mints a fresh voter token when the cookie is missing or invalid, and
attaches the session to the request context:

	mux.HandleFunc("GET /api/items",
		middleware.WithLogging(
			middleware.WithSession(cfg,
				middleware.RequireLogin(h.ListItems))))

Handlers read it back with SessionFrom(r). Minting is idempotent per
session: once the cookie exists, every request reuses the same voter
token.

RequireLogin gates handlers behind the site password (401 until the
session's logged_in flag is set by the login handler).

# Helpers

  - WithLogging: slog request start/completion with duration
  - JSONResponse / ErrorResponse: uniform JSON bodies
  - ParseJSONBody: decode request bodies
  - CORS: permissive CORS with credentials for the frontend

RequestWithSession is exported so handler tests can inject a session
without running the full middleware chain.
*/
package middleware
