package repository

import (
	"github.com/lshigami/Numbat/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.ProblemSession) error
	FindByID(id uint) (*model.ProblemSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.ProblemSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uint) (*model.ProblemSession, error) {
	var session model.ProblemSession
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
