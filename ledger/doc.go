// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the vote engine: item creation, the ranked
listing, and vote casting with the one-vote-per-voter-per-item
guarantee.

# Operations

	engine := ledger.NewEngine(conn)

	views, err := engine.ListItems(ctx, voterToken)
	item, err := engine.AddItem(ctx, name)
	votes, err := engine.CastVote(ctx, itemID, voterToken)

Expected failures are the sentinels in the models package
(ErrEmptyName, ErrDuplicateName, ErrItemNotFound, ErrAlreadyVoted);
anything else is a storage failure.

# Correctness Model

The double-vote guard is the UNIQUE (item_id, voter_token) constraint
in storage. CastVote inserts the vote row and increments item.votes in
one transaction:

  - insert succeeds → increment applies against the stored counter
    (votes = votes + 1, not a value read earlier) and both commit
  - insert hits the unique constraint → transaction rolls back, no
    counter change, ErrAlreadyVoted

So a counter increment is observable only with its vote row, and the
invariant item.votes == count(votes for item) holds for every
committed read, under any interleaving of concurrent callers.

AddItem does a case-insensitive pre-check for a friendly error, but
the unique index on LOWER(name) is what decides a race between two
identical inserts: one gets the row, the other gets ErrDuplicateName.

# Ordering

ListItems orders by votes descending, then created_at ascending, so
earlier proposals rank above later ones on equal votes.
*/
package ledger
