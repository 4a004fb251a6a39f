/*
Package store contains the persistence layer: the identity store, the
poll store, and the vote ledger.

# Poll Storage

A poll's options and vote counters are Postgres arrays on the poll row,
so the two stay positionally matched and a counter bump is a single
targeted update:

	UPDATE poll SET votes[i] = votes[i] + 1 WHERE id = $1

The voter set lives in the poll_voter table. Its composite primary key
(poll_id, user_id) is the one-vote-per-user rule: duplicate votes fail
at the database even when two requests race.

# Casting Votes

CastVote runs in one transaction: look up the poll, reject inactive
polls and out-of-range option indexes, record the voter, bump the
counter. The voter insert and the increment commit together or not at
all. Concurrent votes by distinct users serialize on the poll row lock,
so no increment is lost.

# Legacy Rows

Polls created before ownership and the active flag existed have NULL
owner_id and is_active. Reads treat those as unowned and active, and
writes never rewrite the full row, so old records keep working.

# Errors

Stores return sentinel errors (ErrNotFound, ErrValidation,
ErrUserExists, ErrPollInactive, ErrInvalidOption, ErrAlreadyVoted,
ErrConflict) that handlers map onto HTTP status codes. Ownership checks
live in the lookup predicate, so "not yours" and "missing" both come
back as ErrNotFound.

Every store call carries a bounded timeout.
*/
package store
