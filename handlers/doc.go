/*
Package handlers contains HTTP request handlers for the QuickPoll API.

# Handler Types

Each handler is a struct with its store and hub dependencies, created
via constructor functions:

  - AuthHandler: registration and login
  - PollHandler: poll CRUD and status toggling
  - VotingHandler: vote casting
  - RealtimeHandler: the websocket event stream

# Poll Operations

	GET    /api/polls             → List (public)
	GET    /api/polls/{id}        → Get (public)
	POST   /api/polls             → Create (authenticated)
	GET    /api/polls/mine        → Mine (authenticated)
	PATCH  /api/polls/{id}/status → SetStatus (owner only)
	DELETE /api/polls/{id}        → Delete (owner only)

Owner-only operations return 404 for polls that exist but belong to
someone else; the store folds ownership into the lookup.

# Voting

	POST /api/polls/{id}/vote → Vote (authenticated)

One vote per user per poll. A second vote gets 403; votes on inactive
polls or out-of-range option indexes get 400.

# Realtime

	GET /ws → Serve

Every state-changing handler publishes to the event hub after the
change is persisted. Publishing is fire-and-forget and can never fail a
request.

# Authentication

	POST /api/auth/register → Register
	POST /api/auth/login    → Login

Both return a bearer token plus the public user. Protected routes are
wrapped with middleware.RequireAuth by the router.
*/
package handlers
