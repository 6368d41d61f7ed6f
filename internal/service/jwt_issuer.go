package service

import (
	"schoolhub/internal/entity"
	"schoolhub/internal/utils"
)

// JWTSessionTokens adapts utils.JWTManager to the SessionTokenManager
// interface the service depends on.
type JWTSessionTokens struct {
	Manager *utils.JWTManager
}

func (j JWTSessionTokens) IssueSessionToken(account *entity.Account) (string, error) {
	if j.Manager == nil {
		return "", ErrInvalidToken
	}
	profileImage := ""
	if account.ProfileImage != nil {
		profileImage = *account.ProfileImage
	}
	return j.Manager.IssueSessionToken(
		account.ID.String(),
		account.FirstName,
		account.LastName,
		account.Email,
		profileImage,
	)
}

func (j JWTSessionTokens) ParseSessionToken(token string) (*utils.SessionClaims, error) {
	if j.Manager == nil {
		return nil, ErrInvalidToken
	}
	return j.Manager.ParseSessionToken(token)
}
