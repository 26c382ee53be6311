// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Daily Pick API server.

Daily Pick is a small shared shortlist: anyone with the site password
proposes items and upvotes them (one vote per person per item), and
the whole list wipes itself once per day at a configured time so every
day starts fresh.

# Starting the Server

The server reads a .env file, environment variables, or CLI flags:

	SESSION_SECRET=... ADMIN_PASSWORD_HASH='$2a$10$...' go run .

Or with flags:

	go run . -p 8080 -d items.db -t sqlite

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): secret for signing session cookies
  - ADMIN_PASSWORD_HASH (-admin-hash): bcrypt hash of the site password

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_URL (-d): connection string or sqlite path (default: items.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - RESET_TZ (-reset-tz): timezone for the daily wipe (default: Asia/Kolkata)
  - RESET_TIME (-reset-time): time of day for the wipe (default: 18:00:00)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ledger: the vote engine (items, tallies, one-vote constraint)
  - reset: lazy once-per-day wipe, checked on every ledger request
  - handlers: HTTP request handlers (items, voting, session)
  - router: route definitions using Go 1.22+ routing
  - middleware: session cookies, logging, JSON helpers
  - models: domain types and error taxonomy
  - auth: voter tokens, session signing, password gate
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.

# Known Limitation

The daily reset is coordinated in-process. Running more than one
instance against a shared database wipes once per instance rather than
once globally; deployments that scale out should move the schedule to
cron or a database-held marker.
*/
package main
