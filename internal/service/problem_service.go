package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Numbat/internal/dto"
	"github.com/lshigami/Numbat/internal/model"
	"github.com/lshigami/Numbat/internal/repository"
	"github.com/rs/zerolog/log"
)

// ProblemService generates problems and persists them as sessions so
// later submissions can be graded against the stored answer.
type ProblemService interface {
	GenerateProblem(ctx context.Context, req dto.GenerateProblemRequest) (*dto.ProblemResponse, error)
	GetSession(ctx context.Context, sessionID uint) (*dto.SessionResponse, error)
}

type problemService struct {
	sessionRepo repository.SessionRepository
	gemini      GeminiService
}

func NewProblemService(sessionRepo repository.SessionRepository, gemini GeminiService) ProblemService {
	return &problemService{sessionRepo: sessionRepo, gemini: gemini}
}

func (s *problemService) GenerateProblem(ctx context.Context, req dto.GenerateProblemRequest) (*dto.ProblemResponse, error) {
	problem, err := s.gemini.GenerateProblem(ctx, req.Difficulty, req.ProblemType)
	if err != nil {
		return nil, fmt.Errorf("problem generation failed: %w", err)
	}

	// The placeholder problem is persisted like any other so the client
	// always gets a session id back.
	session := model.ProblemSession{ProblemText: problem.ProblemText}
	if problem.FinalAnswer != nil {
		session.CorrectAnswer = *problem.FinalAnswer
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Msg("GenerateProblem: failed to persist problem session")
		return nil, fmt.Errorf("failed to persist problem session: %w", err)
	}

	log.Info().Uint("sessionID", session.ID).Str("difficulty", req.Difficulty).Str("problemType", req.ProblemType).Msg("Problem session created")
	return &dto.ProblemResponse{
		SessionID:   session.ID,
		ProblemText: session.ProblemText,
		FinalAnswer: problem.FinalAnswer,
	}, nil
}

func (s *problemService) GetSession(ctx context.Context, sessionID uint) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		log.Warn().Err(err).Uint("sessionID", sessionID).Msg("GetSession: session lookup failed")
		return nil, fmt.Errorf("problem session not found with ID %d: %w", sessionID, err)
	}

	var resp dto.SessionResponse
	if err := copier.Copy(&resp, session); err != nil {
		return nil, fmt.Errorf("error preparing session response: %w", err)
	}
	return &resp, nil
}
