package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/store"
)

// writeStoreError maps a store failure onto the HTTP error taxonomy.
// Unknown failures are logged and returned as a generic 500 so internal
// details never reach clients.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, store.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrPollInactive):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Poll is not active")
	case errors.Is(err, store.ErrInvalidOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option index")
	case errors.Is(err, store.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusForbidden, "You have already voted on this poll")
	case errors.Is(err, store.ErrUserExists):
		middleware.ErrorResponse(w, http.StatusBadRequest, "User with that email or username already exists")
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Conflicting update, please retry")
	default:
		slog.Error("store operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
	}
}
