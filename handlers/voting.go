package handlers

import (
	"log/slog"
	"net/http"

	"github.com/quickpoll/quickpoll/events"
	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/models"
	"github.com/quickpoll/quickpoll/store"
)

type VotingHandler struct {
	polls *store.PollStore
	hub   *events.Hub
}

func NewVotingHandler(polls *store.PollStore, hub *events.Hub) *VotingHandler {
	return &VotingHandler{polls: polls, hub: hub}
}

// Vote handles POST /api/polls/{id}/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionIndex == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "optionIndex is required")
		return
	}

	poll, err := h.polls.CastVote(r.Context(), pollID, *req.OptionIndex, user.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "option", *req.OptionIndex, "voter", user.ID)

	// Best-effort: the vote is already committed, observers just get a
	// snapshot if they're listening.
	h.hub.Publish(events.PollUpdated, poll)

	middleware.JSONResponse(w, http.StatusOK, poll)
}
