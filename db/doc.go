// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation for the
vote ledger.

# Opening

Open selects the driver from config:

	conn, err := db.Open(cfg) // sqlite (default) or postgres

For sqlite the DSN is decorated with busy_timeout, WAL, and
foreign_keys pragmas; see SqliteDSN.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.

# Tables

  - item: proposed entries with a denormalized vote count
  - vote: one row per (item, voter) pair

# Constraints

The constraints are the authoritative correctness mechanism, not an
optimization:

  - UNIQUE (vote.item_id, vote.voter_token) is the sole guard against
    double-voting; racing inserts resolve here, never in memory
  - UNIQUE index on LOWER(item.name) backs the case-insensitive
    duplicate check in the ledger
  - vote.item_id cascades on item deletion, so wiping items wipes votes

IsUniqueViolation and IsForeignKeyViolation recognize constraint errors
from both drivers by message, since database/sql exposes no portable
error codes across lib/pq and modernc.org/sqlite.
*/
package db
