/*
Package db creates the database schema.

Three tables:

  - app_user: registered identities (unique username and email)
  - poll: question, options TEXT[], votes INTEGER[] (positionally
    matched, enforced by a CHECK), owner, active flag
  - poll_voter: the voter set; PRIMARY KEY (poll_id, user_id) is the
    one-vote-per-user constraint

CreateSchema is idempotent and runs at startup.
*/
package db
