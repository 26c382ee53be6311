// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reset implements the lazy once-per-day wipe of the vote ledger.

# Model

There is no background scheduler. Every items/vote request calls

	err := sched.MaybeReset(ctx)

before touching the ledger. The call is a constant-time no-op until the
configured time of day (RESET_TIME, in RESET_TZ) has passed on a date
newer than the watermark; then exactly one caller wipes all votes and
items in a single transaction and advances the watermark to today.

# Concurrency

The fast path reads the watermark without a lock (atomic). The
transition is "check, lock, re-check, act": racing requests both pass
the cheap check, one takes the mutex and wipes, the rest re-check under
the lock and return. The mutex also serializes the wipe transaction
against a second wipe, while ordinary reads and writes proceed without
it (the store's transaction keeps them consistent with the wipe).

# Failure

If the wipe fails to commit, the watermark is not advanced and the
error propagates to the caller; the next eligible request retries.
Nothing is persisted about the watermark: a process restart re-fires
the wipe on the first eligible request, which deletes nothing from an
already-wiped ledger.

# Limitation

Reset authority is single-process. Running multiple instances would
wipe once per instance (harmless but noisy) and is out of scope;
multi-instance deployments want a cron job or a store-held marker
instead.
*/
package reset
