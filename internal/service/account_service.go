package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"schoolhub/internal/entity"
	"schoolhub/internal/repository"
	"schoolhub/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountService implements the account lifecycle: registration, OTP
// verification, authentication, profile update and logout. All state lives in
// the account store; each call reads and writes a single account record.
type AccountService struct {
	accounts  repository.AccountRepository
	auditLogs repository.AuditLogRepository

	mailer       Mailer
	passwordHash PasswordHasher
	tokens       SessionTokenManager
	clock        Clock
	config       AccountConfig
}

func NewAccountService(
	accounts repository.AccountRepository,
	auditLogs repository.AuditLogRepository,
	mailer Mailer,
	passwordHash PasswordHasher,
	tokens SessionTokenManager,
	clock Clock,
	config AccountConfig,
) *AccountService {
	return &AccountService{
		accounts:     accounts,
		auditLogs:    auditLogs,
		mailer:       mailer,
		passwordHash: passwordHash,
		tokens:       tokens,
		clock:        clock,
		config:       config,
	}
}

// Register creates an unverified account and dispatches a verification code.
// The account stays persisted even when dispatch fails; the caller is
// expected to retry via Authenticate, which re-issues the code.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*entity.Account, error) {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" ||
		strings.TrimSpace(string(input.Role)) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &entity.Account{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Password:  hash,
		Role:      input.Role,
		Verified:  false,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Authenticate checks credentials. An unverified account gets a fresh
// verification code instead of a token; a verified one gets a signed session
// token persisted on the record.
func (s *AccountService) Authenticate(ctx context.Context, input CredentialsInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if !s.passwordHash.Verify(account.Password, input.Password) {
		_ = s.audit(ctx, &account.ID, input.IPAddress, entity.SigninFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !account.Verified {
		if err := s.issueOTP(ctx, account); err != nil {
			return nil, err
		}
		return &AuthResult{Account: account, VerificationSent: true}, nil
	}

	token, err := s.tokens.IssueSessionToken(account)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.SetSessionToken(ctx, account.ID, &token); err != nil {
		return nil, err
	}
	account.SessionToken = &token

	_ = s.audit(ctx, &account.ID, input.IPAddress, entity.SigninSuccess, nil)
	return &AuthResult{Account: account, SessionToken: token}, nil
}

// VerifyOTP marks the account verified when the submitted code matches the
// outstanding one and its window is still open. The code pair is left in
// place, so repeating the call before expiry succeeds again; once expired it
// fails regardless of prior verification.
func (s *AccountService) VerifyOTP(ctx context.Context, email string, code int) error {
	if strings.TrimSpace(email) == "" || code == 0 {
		return ErrInvalidInput
	}

	account, err := s.accounts.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if account == nil || account.OTP == nil || *account.OTP != code {
		return ErrInvalidOTP
	}
	if account.OTPExpires == nil || !s.clock.Now().Before(*account.OTPExpires) {
		return ErrOTPExpired
	}

	if err := s.accounts.MarkVerified(ctx, account.ID); err != nil {
		return err
	}
	_ = s.audit(ctx, &account.ID, nil, entity.Verified, nil)
	return nil
}

// UpdateProfile overwrites the optional profile fields. Token signature and
// expiry are rejected before any store access; the stored session token is
// then compared so a logged-out token cannot be replayed.
func (s *AccountService) UpdateProfile(ctx context.Context, token string, input ProfileInput) (*entity.Account, error) {
	account, err := s.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}

	account.Phone = &input.Phone
	account.Address = &input.Address
	account.DateOfBirth = &input.DateOfBirth
	account.Gender = &input.Gender
	account.ProfileImage = &input.ProfileImage

	if err := s.accounts.UpdateProfile(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Logout clears the stored session token, invalidating the cookie value for
// every later call even though the JWT itself may not have expired yet.
func (s *AccountService) Logout(ctx context.Context, token string, ipAddress *string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidInput
	}

	account, err := s.accounts.FindBySessionToken(ctx, token)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if err := s.accounts.SetSessionToken(ctx, account.ID, nil); err != nil {
		return err
	}
	_ = s.audit(ctx, &account.ID, ipAddress, entity.SignedOut, nil)
	return nil
}

// ResolveSession maps a presented token to its account. The signature and
// expiry checks run first; a missing account is reported distinctly so
// callers can surface not-found instead of unauthorized.
func (s *AccountService) ResolveSession(ctx context.Context, token string) (*entity.Account, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	claims, err := s.tokens.ParseSessionToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.SessionToken == nil || *account.SessionToken != token {
		return nil, ErrInvalidToken
	}
	return account, nil
}

func (s *AccountService) issueOTP(ctx context.Context, account *entity.Account) error {
	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	validity := s.otpTTL()
	if err := s.mailer.SendVerificationCode(ctx, account.Email, code, validity); err != nil {
		return ErrDeliveryFailed
	}

	expiresAt := s.clock.Now().Add(validity)
	if err := s.accounts.SetOTP(ctx, account.ID, code, expiresAt); err != nil {
		return err
	}
	account.OTP = &code
	account.OTPExpires = &expiresAt
	return nil
}

func (s *AccountService) audit(
	ctx context.Context,
	accountID *uuid.UUID,
	ipAddress *string,
	action entity.AuditAction,
	metadata map[string]any,
) error {
	if s.auditLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.AuditLog{
		AccountID: accountID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.auditLogs.Log(ctx, log)
}

func (s *AccountService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 10 * time.Minute
}
