package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "seller@example.com", "seller", time.Hour)
	require.NoError(t, err)

	userID, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "seller", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "buyer@example.com", "buyer", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, _, err := ExtractClaimsFromToken("not-a-token")
	assert.Error(t, err)
}
