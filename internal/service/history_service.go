package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Numbat/internal/dto"
	"github.com/lshigami/Numbat/internal/repository"
	"github.com/rs/zerolog/log"
)

// HistoryService reads the submission history and derives the running
// score from it on every fetch, so the counts can never drift from the
// stored rows.
type HistoryService interface {
	ListSubmissions(ctx context.Context, filter dto.HistoryFilter) (*dto.HistoryResponse, error)
}

type historyService struct {
	submissionRepo repository.SubmissionRepository
}

func NewHistoryService(submissionRepo repository.SubmissionRepository) HistoryService {
	return &historyService{submissionRepo: submissionRepo}
}

func (s *historyService) ListSubmissions(ctx context.Context, filter dto.HistoryFilter) (*dto.HistoryResponse, error) {
	submissions, err := s.submissionRepo.FindFiltered(filter.SessionID, filter.UserIdentifier)
	if err != nil {
		log.Error().Err(err).Msg("ListSubmissions: failed to read submission history")
		return nil, fmt.Errorf("error fetching submission history: %w", err)
	}

	resp := dto.HistoryResponse{
		Submissions: make([]dto.SubmissionResponse, 0, len(submissions)),
		Total:       len(submissions),
	}
	for i := range submissions {
		var item dto.SubmissionResponse
		if err := copier.Copy(&item, &submissions[i]); err != nil {
			return nil, fmt.Errorf("error preparing history response: %w", err)
		}
		resp.Submissions = append(resp.Submissions, item)
		if submissions[i].IsCorrect {
			resp.Score++
		}
	}
	return &resp, nil
}
