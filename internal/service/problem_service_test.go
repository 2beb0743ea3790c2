package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/lshigami/Numbat/internal/dto"
	"github.com/lshigami/Numbat/internal/model"
	"github.com/lshigami/Numbat/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProblemPersistsSession(t *testing.T) {
	db := newTestDB(t)
	gemini := &fakeGemini{problem: &GeneratedProblem{
		ProblemText: "Ali has 3 apples and buys 4 more. How many apples does he have?",
		FinalAnswer: floatPtr(7),
	}}
	svc := NewProblemService(repository.NewSessionRepository(db), gemini)

	resp, err := svc.GenerateProblem(context.Background(), dto.GenerateProblemRequest{
		Difficulty:  "Easy",
		ProblemType: "Addition",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.SessionID)
	assert.Equal(t, gemini.problem.ProblemText, resp.ProblemText)
	require.NotNil(t, resp.FinalAnswer)
	assert.Equal(t, 7.0, *resp.FinalAnswer)

	var session model.ProblemSession
	require.NoError(t, db.First(&session, resp.SessionID).Error)
	assert.Equal(t, gemini.problem.ProblemText, session.ProblemText)
	assert.Equal(t, 7.0, session.CorrectAnswer)
	assert.False(t, session.CreatedAt.IsZero())
}

func TestGenerateProblemPlaceholderStillGetsSession(t *testing.T) {
	db := newTestDB(t)
	gemini := &fakeGemini{problem: &GeneratedProblem{ProblemText: PlaceholderProblemText}}
	svc := NewProblemService(repository.NewSessionRepository(db), gemini)

	resp, err := svc.GenerateProblem(context.Background(), dto.GenerateProblemRequest{
		Difficulty:  "Easy",
		ProblemType: "Addition",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.SessionID)
	assert.Equal(t, PlaceholderProblemText, resp.ProblemText)
	assert.Nil(t, resp.FinalAnswer)
}

func TestGenerateProblemUpstreamErrorPropagates(t *testing.T) {
	db := newTestDB(t)
	gemini := &fakeGemini{generateErr: fmt.Errorf("gemini API error: unavailable")}
	svc := NewProblemService(repository.NewSessionRepository(db), gemini)

	_, err := svc.GenerateProblem(context.Background(), dto.GenerateProblemRequest{
		Difficulty:  "Easy",
		ProblemType: "Addition",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.ProblemSession{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetSession(t *testing.T) {
	db := newTestDB(t)
	session := model.ProblemSession{ProblemText: "What is 6 x 7?", CorrectAnswer: 42}
	require.NoError(t, db.Create(&session).Error)

	svc := NewProblemService(repository.NewSessionRepository(db), &fakeGemini{})

	resp, err := svc.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resp.ID)
	assert.Equal(t, session.ProblemText, resp.ProblemText)
	assert.Equal(t, 42.0, resp.CorrectAnswer)

	_, err = svc.GetSession(context.Background(), session.ID+1)
	assert.Error(t, err)
}
