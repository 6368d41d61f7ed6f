package service

import (
	"time"

	"schoolhub/internal/entity"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.AccountRole
}

type CredentialsInput struct {
	Email     string
	Password  string
	IPAddress *string
}

type ProfileInput struct {
	Phone        string
	Address      string
	DateOfBirth  time.Time
	Gender       entity.Gender
	ProfileImage string
}

// AuthResult carries either an issued session token or, for unverified
// accounts, the fact that a fresh verification code was dispatched instead.
type AuthResult struct {
	Account          *entity.Account
	SessionToken     string
	VerificationSent bool
}
