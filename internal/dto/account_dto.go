package dto

import (
	"time"

	"schoolhub/internal/entity"
)

// Envelope is the uniform success body: {message, data}. Errors surface only
// an HTTP status through the centralized error handler.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=student teacher parent"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   int    `json:"otp" validate:"required"`
}

type UpdateProfileRequest struct {
	Phone        string `json:"phone" validate:"required,min=7,max=16"`
	Address      string `json:"address" validate:"required"`
	DateOfBirth  string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	ProfileImage string `json:"profileImage" validate:"required"`
}

type AccountResponse struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Verified     bool       `json:"verified"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	ProfileImage *string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func AccountResponseFromEntity(account *entity.Account) AccountResponse {
	var gender *string
	if account.Gender != nil {
		value := string(*account.Gender)
		gender = &value
	}
	return AccountResponse{
		ID:           account.ID.String(),
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		Role:         string(account.Role),
		Verified:     account.Verified,
		Phone:        account.Phone,
		Address:      account.Address,
		DateOfBirth:  account.DateOfBirth,
		Gender:       gender,
		ProfileImage: account.ProfileImage,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
