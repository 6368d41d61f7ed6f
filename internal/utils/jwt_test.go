package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseSessionToken(t *testing.T) {
	manager := JWTManager{
		Secret:          []byte("test-secret"),
		Issuer:          "schoolhub",
		SessionTokenTTL: time.Hour,
	}

	token, err := manager.IssueSessionToken("account-1", "Ada", "Lovelace", "ada@example.com", "https://img.example/ada.png")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.Subject)
	assert.Equal(t, "Ada", claims.FirstName)
	assert.Equal(t, "Lovelace", claims.LastName)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "https://img.example/ada.png", claims.ProfileImage)
	assert.Equal(t, "schoolhub", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	issuer := JWTManager{Secret: []byte("secret-a"), SessionTokenTTL: time.Hour}
	verifier := JWTManager{Secret: []byte("secret-b"), SessionTokenTTL: time.Hour}

	token, err := issuer.IssueSessionToken("account-1", "Ada", "Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	_, err = verifier.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Tampered(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret"), SessionTokenTTL: time.Hour}

	token, err := manager.IssueSessionToken("account-1", "Ada", "Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	_, err = manager.ParseSessionToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Expired(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret"), SessionTokenTTL: -time.Minute}

	token, err := manager.IssueSessionToken("account-1", "Ada", "Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	_, err = manager.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret")}

	_, err := manager.ParseSessionToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
