package domain

// User is a registered account. The hash never leaves the service.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Question models an MCQ record in the question bank. ID is the
// storage-internal identifier and is stripped before a question is
// handed to a client.
type Question struct {
	ID            int64    `json:"-"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// LeaderboardEntry holds one best-score record per participant.
type LeaderboardEntry struct {
	ParticipantName string `json:"participant_name"`
	BestScore       int    `json:"best_score"`
}

// DemoQuiz is a scratch record served by the demo endpoints. It is
// process-scoped only and never persisted.
type DemoQuiz struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubmitOutcome reports whether a score submission created a new
// leaderboard entry or overwrote an existing one.
type SubmitOutcome int

const (
	OutcomeCreated SubmitOutcome = iota
	OutcomeUpdated
)
