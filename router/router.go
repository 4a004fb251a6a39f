package router

import (
	"database/sql"
	"net/http"

	"github.com/quickpoll/quickpoll/cliparse"
	"github.com/quickpoll/quickpoll/events"
	"github.com/quickpoll/quickpoll/handlers"
	"github.com/quickpoll/quickpoll/middleware"
	"github.com/quickpoll/quickpoll/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, hub *events.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	users := store.NewUserStore(db)
	polls := store.NewPollStore(db)

	authHandler := handlers.NewAuthHandler(users, cfg)
	pollHandler := handlers.NewPollHandler(polls, hub)
	votingHandler := handlers.NewVotingHandler(polls, hub)
	realtimeHandler := handlers.NewRealtimeHandler(hub)

	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(users, cfg.JWTSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))

	// Polls (public reads)
	mux.HandleFunc("GET /api/polls", middleware.WithLogging(pollHandler.List))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(pollHandler.Get))

	// Polls (authenticated)
	mux.HandleFunc("POST /api/polls", protected(pollHandler.Create))
	mux.HandleFunc("GET /api/polls/mine", protected(pollHandler.Mine))
	mux.HandleFunc("POST /api/polls/{id}/vote", protected(votingHandler.Vote))
	mux.HandleFunc("PATCH /api/polls/{id}/status", protected(pollHandler.SetStatus))
	mux.HandleFunc("DELETE /api/polls/{id}", protected(pollHandler.Delete))

	// Realtime event stream
	mux.HandleFunc("GET /ws", realtimeHandler.Serve)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickpoll API v1"))
	})

	return mux
}
