/*
Package main provides the entry point for the QuickPoll API server.

QuickPoll is a polling service: registered users create polls, every
registered user gets one vote per poll, and results stream live to
connected clients over a websocket.

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." --jwt-secret "..."

A .env file in the working directory is also honored.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): secret for signing session tokens

Optional settings:

  - PORT (-p): server port (default: 3000)
  - TOKEN_TTL_HOURS (--token-ttl): session token lifetime (default: 24)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, voting, realtime)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth guard, CORS, logging, JSON helpers
  - models: request/response and domain types
  - store: identity store, poll store, and the vote ledger
  - events: best-effort broadcaster for poll lifecycle events
  - auth: password hashing and session tokens
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
