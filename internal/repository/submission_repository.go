package repository

import (
	"github.com/lshigami/Numbat/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	// FindFiltered returns submissions newest first. Both filters are
	// optional and combinable; nil means unfiltered. Equal timestamps
	// are broken by the most recently assigned id.
	FindFiltered(sessionID *uint, userIdentifier *string) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindFiltered(sessionID *uint, userIdentifier *string) ([]model.Submission, error) {
	query := r.db.Model(&model.Submission{})
	if sessionID != nil {
		query = query.Where("session_id = ?", *sessionID)
	}
	if userIdentifier != nil {
		query = query.Where("user_identifier = ?", *userIdentifier)
	}

	var submissions []model.Submission
	if err := query.Order("created_at DESC, id DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
