package repository

import (
	"context"
	"errors"
	"time"

	"schoolhub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindBySessionToken(ctx context.Context, token string) (*entity.Account, error)
	SetOTP(ctx context.Context, id uuid.UUID, code int, expiresAt time.Time) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	SetSessionToken(ctx context.Context, id uuid.UUID, token *string) error
	UpdateProfile(ctx context.Context, account *entity.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) FindBySessionToken(ctx context.Context, token string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).
		Where("session_token = ?", token).
		First(&account).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) SetOTP(ctx context.Context, id uuid.UUID, code int, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"otp":         code,
			"otp_expires": expiresAt,
		}).
		Error
}

func (r *accountRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("id = ?", id).
		Update("verified", true).
		Error
}

func (r *accountRepository) SetSessionToken(ctx context.Context, id uuid.UUID, token *string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("id = ?", id).
		Update("session_token", token).
		Error
}

func (r *accountRepository) UpdateProfile(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("id = ?", account.ID).
		Select("phone", "address", "date_of_birth", "gender", "profile_image").
		Updates(account).
		Error
}
