// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain types, request/response types, and the
error taxonomy shared across the Daily Pick server.

# Domain Types

  - Item: a proposed entry with a denormalized vote tally
  - Vote: one (item, voter) pair; voter tokens are never serialized
  - ItemView: an Item plus the calling voter's voted_by_me flag

The Item.Votes field is a cache of count(vote rows for the item). The
ledger package is the only writer of either side, and keeps them equal.

# Error Taxonomy

Sentinel errors describe every expected failure of a ledger operation:

	ErrEmptyName      → 400 (validation)
	ErrDuplicateName  → 409 (case-insensitive name collision)
	ErrItemNotFound   → 404 (vote on a nonexistent item)
	ErrAlreadyVoted   → 409 (uniqueness violation on vote)

Handlers test with errors.Is and map to status codes. Errors outside
the taxonomy are unexpected storage failures.

# Request/Response Types

JSON-tagged structs for the HTTP API. ErrorResponse is the uniform
error body written by middleware.ErrorResponse.
*/
package models
