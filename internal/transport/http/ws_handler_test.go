package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quizhub-service/internal/app"
	"quizhub-service/internal/domain"
	"quizhub-service/internal/infra/memory"
	"github.com/gorilla/websocket"
)

func TestLeaderboardFeed(t *testing.T) {
	leaderboard := app.NewLeaderboardService(memory.NewLeaderboardRepository())
	handler := NewHandler(
		app.NewAuthService(memory.NewUserRepository()),
		app.NewQuestionService(memory.NewQuestionRepository()),
		leaderboard,
		app.NewDemoQuizList(),
	)

	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	wsURL := strings.Replace(server.URL, "http", "ws", 1) + "/leaderboard/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var initial feedMessage
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&initial); err != nil {
		t.Fatalf("read initial snapshot: %v", err)
	}
	if len(initial.Leaderboard) != 0 {
		t.Fatalf("expected empty board, got %+v", initial.Leaderboard)
	}

	if _, err := leaderboard.SubmitScore(context.Background(), "alice", 80); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var update feedMessage
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read update: %v", err)
	}
	want := domain.LeaderboardEntry{ParticipantName: "alice", BestScore: 80}
	if len(update.Leaderboard) != 1 || update.Leaderboard[0] != want {
		t.Fatalf("unexpected update %+v", update.Leaderboard)
	}
}
