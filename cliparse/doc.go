/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win over env vars; env vars win over defaults.

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): secret for signing session tokens

Optional settings:

  - PORT (-p): server port (default: 3000)
  - TOKEN_TTL_HOURS (--token-ttl): session token lifetime (default: 24)

A .env file in the working directory is loaded by main before parsing.
*/
package cliparse
