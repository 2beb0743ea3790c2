package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Numbat/internal/dto"
)

// HintService produces hint text for a problem. It is stateless: a hint
// request touches no session or submission rows, whether it succeeds or
// fails.
type HintService interface {
	HintForProblem(ctx context.Context, req dto.HintRequest) (*dto.HintResponse, error)
}

type hintService struct {
	gemini GeminiService
}

func NewHintService(gemini GeminiService) HintService {
	return &hintService{gemini: gemini}
}

func (s *hintService) HintForProblem(ctx context.Context, req dto.HintRequest) (*dto.HintResponse, error) {
	hint, err := s.gemini.HintForProblem(ctx, req.ProblemText)
	if err != nil {
		return nil, fmt.Errorf("hint generation failed: %w", err)
	}
	return &dto.HintResponse{SessionID: req.SessionID, Hint: hint}, nil
}
