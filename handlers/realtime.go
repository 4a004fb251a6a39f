package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/quickpoll/quickpoll/events"
)

// writeTimeout bounds each event write so one stuck connection can't
// pin a goroutine forever.
const writeTimeout = 5 * time.Second

type RealtimeHandler struct {
	hub *events.Hub
}

func NewRealtimeHandler(hub *events.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Serve handles GET /ws. Each connection gets its own hub subscription
// and receives poll lifecycle events as JSON until it disconnects.
func (h *RealtimeHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Warn("websocket accept failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	defer conn.CloseNow()

	// Observers never send anything meaningful; CloseRead discards
	// inbound frames and cancels the context when the peer goes away.
	ctx := conn.CloseRead(r.Context())

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	slog.Info("realtime subscriber connected", "remote", r.RemoteAddr)

	for {
		select {
		case <-ctx.Done():
			slog.Info("realtime subscriber disconnected", "remote", r.RemoteAddr)
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, conn, ev)
			cancel()
			if err != nil {
				slog.Info("realtime subscriber dropped", "remote", r.RemoteAddr, "error", err)
				return
			}
		}
	}
}
