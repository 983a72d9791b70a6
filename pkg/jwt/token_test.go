package jwtPkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, exp, err := Sign(map[string]interface{}{"session_id": "01HSESSION"}, time.Hour)
	require.NoError(t, err)
	require.Greater(t, exp, time.Now().Unix())

	parsed, err := VerifyToken(token, "JWT_ACCESS_TOKEN_SECRET")
	require.NoError(t, err)

	session, err := SessionFromToken(parsed)
	require.NoError(t, err)
	require.Equal(t, "01HSESSION", session.ID)
	require.WithinDuration(t, time.Unix(exp, 0), session.ExpiresAt, time.Second)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	_, err := VerifyToken("", "JWT_ACCESS_TOKEN_SECRET")
	require.Error(t, err)

	_, err = VerifyToken("not-a-token", "JWT_ACCESS_TOKEN_SECRET")
	require.Error(t, err)

	token, _, err := Sign(map[string]interface{}{"session_id": "x"}, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(token, "JWT_ACCESS_TOKEN_SECRET")
	require.Error(t, err)
}

func TestSessionFromTokenRequiresSessionID(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, _, err := Sign(map[string]interface{}{"other": "claim"}, time.Hour)
	require.NoError(t, err)

	parsed, err := VerifyToken(token, "JWT_ACCESS_TOKEN_SECRET")
	require.NoError(t, err)

	_, err = SessionFromToken(parsed)
	require.Error(t, err)
}

func TestSignWithoutSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"session_id": "x"}, time.Hour)
	require.Error(t, err)
}
