// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method and
pattern routing.

# Routes

Public:

	GET  /health → liveness probe, plain "OK"
	GET  /       → API banner
	POST /login  → password gate
	POST /logout → clear session

Behind the password gate (WithSession + RequireLogin):

	GET  /api/items
	POST /api/items
	POST /api/items/{id}/vote

# Wiring

NewRouter builds the single reset scheduler and hands it to both the
item and vote handlers, so all routes observe one daily-reset
watermark:

	mux := router.NewRouter(db, cfg)
*/
package router
