package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := manager.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
