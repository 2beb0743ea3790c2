package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Numbat/internal/dto"
	"github.com/lshigami/Numbat/internal/model"
	"github.com/lshigami/Numbat/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmissionService grades one answer, obtains AI feedback for it, and
// records the attempt as an immutable row. Repeated submissions for the
// same session are independent rows; nothing is ever updated in place.
type SubmissionService interface {
	SubmitAnswer(ctx context.Context, req dto.SubmitAnswerRequest) (*dto.SubmissionResponse, error)
}

type submissionService struct {
	sessionRepo    repository.SessionRepository
	submissionRepo repository.SubmissionRepository
	gemini         GeminiService
}

func NewSubmissionService(
	sessionRepo repository.SessionRepository,
	submissionRepo repository.SubmissionRepository,
	gemini GeminiService,
) SubmissionService {
	return &submissionService{
		sessionRepo:    sessionRepo,
		submissionRepo: submissionRepo,
		gemini:         gemini,
	}
}

func (s *submissionService) SubmitAnswer(ctx context.Context, req dto.SubmitAnswerRequest) (*dto.SubmissionResponse, error) {
	correctAnswer := req.CorrectAnswer
	if !correctAnswer.Set {
		session, err := s.sessionRepo.FindByID(req.SessionID)
		if err != nil {
			log.Warn().Err(err).Uint("sessionID", req.SessionID).Msg("SubmitAnswer: session lookup for correct answer failed")
			return nil, fmt.Errorf("problem session not found with ID %d: %w", req.SessionID, err)
		}
		correctAnswer = dto.Numeric{
			Value: session.CorrectAnswer,
			Raw:   strconv.FormatFloat(session.CorrectAnswer, 'f', -1, 64),
			Valid: true,
			Set:   true,
		}
	}

	// Graded exactly once, here. A non-numeric answer can never equal a
	// valid one, so it grades as incorrect rather than failing.
	isCorrect := req.UserAnswer.Valid && correctAnswer.Valid && req.UserAnswer.Value == correctAnswer.Value

	// Feedback comes before persistence: if either step fails, no row is
	// written and the client may simply re-submit.
	feedback, err := s.gemini.FeedbackForSubmission(ctx, req.ProblemText, req.UserAnswer.String(), correctAnswer.String(), isCorrect)
	if err != nil {
		return nil, fmt.Errorf("feedback generation failed: %w", err)
	}

	submission := model.Submission{
		SessionID:      req.SessionID,
		UserAnswer:     req.UserAnswer.Value,
		IsCorrect:      isCorrect,
		FeedbackText:   feedback,
		ProblemText:    req.ProblemText,
		UserIdentifier: req.UserIdentifier,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Uint("sessionID", req.SessionID).Msg("SubmitAnswer: failed to persist submission")
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	log.Info().Uint("submissionID", submission.ID).Uint("sessionID", submission.SessionID).Bool("isCorrect", isCorrect).Msg("Submission recorded")

	var resp dto.SubmissionResponse
	if err := copier.Copy(&resp, &submission); err != nil {
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}
	return &resp, nil
}
