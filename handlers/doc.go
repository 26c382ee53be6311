// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Daily Pick API.

# Handler Types

  - ItemHandler: listing and proposing items
  - VoteHandler: casting votes
  - SessionHandler: password login/logout

ItemHandler and VoteHandler are created with the database connection
and the shared reset scheduler (there must be exactly one scheduler
instance, it owns the daily-reset watermark):

	sched := reset.New(conn, cfg)
	itemHandler := handlers.NewItemHandler(conn, sched)

# Request Flow

Every ledger route runs the reset check before anything else, so a
request arriving after the scheduled wipe time never sees or mutates
yesterday's ledger:

	GET  /api/items           → ListItems (ranked, with voted_by_me)
	POST /api/items           → AddItem
	POST /api/items/{id}/vote → CastVote

All three require a logged-in session (site password). The session
cookie carries the voter token used for voted_by_me and the one-vote
constraint.

# Error Mapping

Ledger sentinels map to statuses; a double vote is an expected outcome
and always gets an explicit 409 body, never a silent success:

	ErrEmptyName     → 400
	ErrDuplicateName → 409
	ErrItemNotFound  → 404
	ErrAlreadyVoted  → 409

# Session Routes

	POST /login  → Login (password → logged_in cookie, voter token kept)
	POST /logout → Logout (clears the cookie)
*/
package handlers
