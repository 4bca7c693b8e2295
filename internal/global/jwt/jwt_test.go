package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	token, err := CreateToken("sid-1", 42, secret, time.Hour, time.Now())
	require.NoError(t, err)

	claims, ok := ParseToken(token, secret)
	require.True(t, ok)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "sid-1", claims.Id)
}

func TestParseTokenRejects(t *testing.T) {
	secret := []byte("s3cret")

	expired, err := CreateToken("sid", 1, secret, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, ok := ParseToken(expired, secret)
	require.False(t, ok)

	token, err := CreateToken("sid", 1, secret, time.Hour, time.Now())
	require.NoError(t, err)
	_, ok = ParseToken(token, []byte("other"))
	require.False(t, ok)

	_, ok = ParseToken("garbage", secret)
	require.False(t, ok)
}
