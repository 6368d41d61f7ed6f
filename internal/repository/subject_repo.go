package repository

import (
	"context"

	"schoolhub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *entity.Subject) error
	ListByClass(ctx context.Context, classID uuid.UUID) ([]entity.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *entity.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]entity.Subject, error) {
	var subjects []entity.Subject
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("name").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}
