package handlers

import (
	"log/slog"
	"net/http"

	"github.com/quickpoll/quickpoll/events"
	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/models"
	"github.com/quickpoll/quickpoll/store"
)

type PollHandler struct {
	polls *store.PollStore
	hub   *events.Hub
}

func NewPollHandler(polls *store.PollStore, hub *events.Hub) *PollHandler {
	return &PollHandler{polls: polls, hub: hub}
}

// List handles GET /api/polls
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.FindAllPolls(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// Get handles GET /api/polls/{id}
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	poll, err := h.polls.FindPollByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Create handles POST /api/polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.polls.CreatePoll(r.Context(), req.Question, req.Options, user.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "owner", user.ID)

	h.hub.Publish(events.PollCreated, poll)
	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// Mine handles GET /api/polls/mine
func (h *PollHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	polls, err := h.polls.FindPollsByOwner(r.Context(), user.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, polls)
}

// SetStatus handles PATCH /api/polls/{id}/status
func (h *PollHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.SetStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.IsActive == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "isActive is required")
		return
	}

	poll, err := h.polls.SetPollActive(r.Context(), r.PathValue("id"), user.ID, *req.IsActive)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("poll status changed", "poll_id", poll.ID, "is_active", poll.IsActive)

	h.hub.Publish(events.PollUpdated, poll)
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Delete handles DELETE /api/polls/{id}
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	pollID := r.PathValue("id")
	if err := h.polls.DeletePoll(r.Context(), pollID, user.ID); err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID, "owner", user.ID)

	h.hub.Publish(events.PollDeleted, events.Deletion{ID: pollID})
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Poll deleted"})
}
