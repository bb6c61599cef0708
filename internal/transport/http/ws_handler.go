package http

import (
	"log"
	"net/http"

	"quizhub-service/internal/app"
	"quizhub-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler streams leaderboard snapshots to websocket clients. The feed is
// read-only: clients receive the current board on connect and a fresh
// snapshot after every accepted score submission.
type WSHandler struct {
	leaderboard *app.LeaderboardService
	upgrader    websocket.Upgrader
}

func NewWSHandler(leaderboard *app.LeaderboardService) *WSHandler {
	return &WSHandler{
		leaderboard: leaderboard,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type feedMessage struct {
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// ServeFeed upgrades the request and forwards leaderboard updates until the
// client disconnects.
func (h *WSHandler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	updates, cancel, err := h.leaderboard.Subscribe(r.Context())
	if err != nil {
		writeInternal(w, err)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Reader goroutine only watches for the client closing the connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case entries, ok := <-updates:
			if !ok {
				return
			}
			if entries == nil {
				entries = []domain.LeaderboardEntry{}
			}
			if err := conn.WriteJSON(feedMessage{Leaderboard: entries}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
