package dto

import "time"

// ProblemResponse is returned after a problem has been generated and its
// session persisted. FinalAnswer is nil when the placeholder problem was
// produced instead of a real one.
type ProblemResponse struct {
	SessionID   uint     `json:"session_id"`
	ProblemText string   `json:"problem_text"`
	FinalAnswer *float64 `json:"final_answer"`
}

// SessionResponse is the stored form of a generated problem.
type SessionResponse struct {
	ID            uint      `json:"id"`
	ProblemText   string    `json:"problem_text"`
	CorrectAnswer float64   `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmissionResponse echoes a persisted submission row.
type SubmissionResponse struct {
	ID             uint      `json:"id"`
	SessionID      uint      `json:"session_id"`
	UserAnswer     float64   `json:"user_answer"`
	IsCorrect      bool      `json:"is_correct"`
	FeedbackText   string    `json:"feedback_text"`
	ProblemText    string    `json:"problem_text"`
	UserIdentifier string    `json:"user_identifier,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// HintResponse carries hint text for a session's problem.
type HintResponse struct {
	SessionID uint   `json:"session_id"`
	Hint      string `json:"hint"`
}

// HistoryResponse lists submissions newest first along with the running
// score derived from them: Total is the number of submissions in the
// view, Score the number answered correctly.
type HistoryResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int                  `json:"total"`
	Score       int                  `json:"score"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
