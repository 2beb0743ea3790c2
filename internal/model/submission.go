package model

import "time"

// Submission records a single answer attempt against a ProblemSession.
// SessionID is a plain reference, not a GORM association: a session may
// outlive the submissions that point at it and nothing cascades.
// Submissions are append-only; the same session may be answered any
// number of times and each attempt is its own row.
type Submission struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	SessionID      uint      `json:"session_id" gorm:"not null;index"`
	UserAnswer     float64   `json:"user_answer"`
	IsCorrect      bool      `json:"is_correct" gorm:"not null"`
	FeedbackText   string    `json:"feedback_text" gorm:"type:text"`
	ProblemText    string    `json:"problem_text" gorm:"type:text;not null"`
	UserIdentifier string    `json:"user_identifier,omitempty" gorm:"index"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
