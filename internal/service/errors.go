package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrInvalidOTP         = errors.New("incorrect otp")
	ErrOTPExpired         = errors.New("otp has expired")
	ErrInvalidToken       = errors.New("invalid or expired session token")
	ErrDeliveryFailed     = errors.New("failed to send verification email")
	ErrClassNotFound      = errors.New("class not found")
	ErrRoleMismatch       = errors.New("account role does not permit this assignment")
)
