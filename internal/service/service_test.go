package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/lshigami/Numbat/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ProblemSession{}, &model.Submission{}))
	return db
}

// fakeGemini satisfies GeminiService without a network dependency and
// records what it was asked for.
type fakeGemini struct {
	problem     *GeneratedProblem
	generateErr error
	feedback    string
	feedbackErr error
	hint        string
	hintErr     error

	feedbackCalls  int
	gotUserAnswer  string
	gotCorrect     string
	gotVerdict     bool
	gotProblemText string
}

func (f *fakeGemini) GenerateProblem(ctx context.Context, difficulty, problemType string) (*GeneratedProblem, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.problem, nil
}

func (f *fakeGemini) FeedbackForSubmission(ctx context.Context, problemText, userAnswer, correctAnswer string, isCorrect bool) (string, error) {
	f.feedbackCalls++
	f.gotProblemText = problemText
	f.gotUserAnswer = userAnswer
	f.gotCorrect = correctAnswer
	f.gotVerdict = isCorrect
	if f.feedbackErr != nil {
		return "", f.feedbackErr
	}
	return f.feedback, nil
}

func (f *fakeGemini) HintForProblem(ctx context.Context, problemText string) (string, error) {
	f.gotProblemText = problemText
	if f.hintErr != nil {
		return "", f.hintErr
	}
	return f.hint, nil
}

func floatPtr(v float64) *float64 { return &v }
