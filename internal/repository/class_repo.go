package repository

import (
	"context"
	"errors"

	"schoolhub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	List(ctx context.Context, limit, offset int) ([]entity.Class, error)
	AddStudent(ctx context.Context, class *entity.Class, student *entity.Account) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *entity.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	var class entity.Class
	err := r.db.WithContext(ctx).
		Preload("Students").
		Preload("Subjects").
		Where("id = ?", id).
		First(&class).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &class, err
}

func (r *classRepository) List(ctx context.Context, limit, offset int) ([]entity.Class, error) {
	var classes []entity.Class
	query := r.db.WithContext(ctx).Order("grade, section")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) AddStudent(ctx context.Context, class *entity.Class, student *entity.Account) error {
	return r.db.WithContext(ctx).
		Model(class).
		Association("Students").
		Append(student)
}
