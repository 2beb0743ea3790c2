package model

import "time"

// ProblemSession is one generated math word problem together with the
// answer it will be graded against. Rows are written once at generation
// time and never updated or deleted.
type ProblemSession struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	ProblemText   string    `json:"problem_text" gorm:"type:text;not null"`
	CorrectAnswer float64   `json:"correct_answer" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}
