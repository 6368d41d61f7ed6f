package service

import (
	"context"
	"time"

	"schoolhub/internal/entity"
	"schoolhub/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type AccountConfig struct {
	// OTPTTL is the validity window of an emailed verification code.
	OTPTTL time.Duration
	// SessionTokenTTL bounds the signed session token.
	SessionTokenTTL time.Duration
}

// Mailer is the notification channel delivering verification codes
// out-of-band. Implementations must honor ctx cancellation so a hung
// dispatch cannot block a request indefinitely.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email string, code int, validity time.Duration) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type SessionTokenManager interface {
	IssueSessionToken(account *entity.Account) (string, error)
	ParseSessionToken(token string) (*utils.SessionClaims, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
