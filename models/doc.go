/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, email, password
  - LoginRequest: email, password
  - CreatePollRequest: question, options
  - VoteRequest: optionIndex
  - SetStatusRequest: isActive

# Response Types

Types for JSON responses:

  - AuthResponse: token, user
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

  - User: registered identity (password hash never serialized)
  - PublicUser: the identity shape safe to return to clients
  - Poll: question, ordered options, positional vote counters, owner,
    active flag, and voter set

Polls created before ownership and voter tracking existed have no owner
and an unset active flag; readers treat those as unowned and active.
*/
package models
