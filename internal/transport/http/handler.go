package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"quizhub-service/internal/app"
	"quizhub-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler wires the HTTP surface to the application services.
type Handler struct {
	auth        *app.AuthService
	questions   *app.QuestionService
	leaderboard *app.LeaderboardService
	demo        *app.DemoQuizList
	feed        *WSHandler
}

func NewHandler(auth *app.AuthService, questions *app.QuestionService, leaderboard *app.LeaderboardService, demo *app.DemoQuizList) *Handler {
	return &Handler{
		auth:        auth,
		questions:   questions,
		leaderboard: leaderboard,
		demo:        demo,
		feed:        NewWSHandler(leaderboard),
	}
}

// Routes builds the router for the whole service.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/healthz", h.healthz)
	r.Get("/quizzes", h.listDemoQuizzes)
	r.Post("/quizzes", h.addDemoQuiz)
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Post("/questions", h.createQuestions)
	r.Get("/get_quizz", h.getQuiz)
	r.Post("/add_leaderboard", h.addLeaderboardScore)
	r.Get("/leaderboard", h.listLeaderboard)
	r.Get("/leaderboard/ws", h.feed.ServeFeed)
	return r
}

func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("Welcome to the Quiz App!"))
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("ok"))
}

func (h *Handler) listDemoQuizzes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"quizzes": h.demo.List()})
}

func (h *Handler) addDemoQuiz(w http.ResponseWriter, r *http.Request) {
	var quiz domain.DemoQuiz
	if err := json.NewDecoder(r.Body).Decode(&quiz); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"quizzes": h.demo.Add(quiz)})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, "Username and password are required")
	case errors.Is(err, domain.ErrDuplicateUsername):
		writeError(w, http.StatusBadRequest, "Username already exists")
	case err != nil:
		writeInternal(w, err)
	default:
		writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.auth.Verify(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, "Username and password are required")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
	case err != nil:
		writeInternal(w, err)
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
	}
}

// createQuestions accepts either a single question object or a list of them.
func (h *Handler) createQuestions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var inputs []app.QuestionInput
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &inputs)
	} else {
		var single app.QuestionInput
		err = json.Unmarshal(trimmed, &single)
		inputs = []app.QuestionInput{single}
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.questions.RegisterQuestions(r.Context(), inputs)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, "Question, options, and correct_answer are required")
	case errors.Is(err, domain.ErrDuplicateQuestion):
		writeError(w, http.StatusBadRequest, "Question already exists")
	case err != nil:
		writeInternal(w, err)
	default:
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Questions created successfully"})
	}
}

func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.questions.AssembleQuiz(r.Context())
	switch {
	case errors.Is(err, domain.ErrInsufficientData):
		writeError(w, http.StatusBadRequest, "There are not enough questions in the database")
	case err != nil:
		writeInternal(w, err)
	default:
		writeJSON(w, http.StatusOK, quiz)
	}
}

type scoreRequest struct {
	ParticipantName string `json:"participant_name"`
	BestScore       int    `json:"best_score"`
}

func (h *Handler) addLeaderboardScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.leaderboard.SubmitScore(r.Context(), req.ParticipantName, req.BestScore)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, "Participant name and best score are required")
	case err != nil:
		writeInternal(w, err)
	case outcome == domain.OutcomeCreated:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Score added to the leaderboard"})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Score updated on the leaderboard"})
	}
}

func (h *Handler) listLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboard.ListLeaderboard(r.Context())
	if err != nil {
		writeInternal(w, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeInternal maps store connectivity failures to 503 and everything else
// to a plain 500, without leaking internals to the client.
func writeInternal(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)
	if errors.Is(err, domain.ErrStoreUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
