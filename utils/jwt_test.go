package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("test-secret", "sess-1", 42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ValidateSessionToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("test-secret", "sess-1", 42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ValidateSessionToken("other-secret", token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken("test-secret", "sess-1", 42, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateSessionToken("test-secret", token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ValidateSessionToken("test-secret", "not.a.token")
	assert.Error(t, err)
}
