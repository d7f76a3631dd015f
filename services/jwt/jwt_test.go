package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	token, err := GenerateSessionToken("abc-123", "s3cret", time.Hour)
	require.NoError(t, err)

	sid, err := SessionIDFromToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", sid)

	_, err = SessionIDFromToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateSessionToken("abc-123", "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = SessionIDFromToken(expired, "s3cret")
	assert.Error(t, err)

	_, err = GenerateSessionToken("abc-123", "", time.Hour)
	assert.Error(t, err)
}
