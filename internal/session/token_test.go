package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := issuer.Issue("session-1")
		require.NoError(t, err)
		assert.Equal(t, "session-1", token.SessionID)
		assert.NotEmpty(t, token.Token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

		sessionID, err := issuer.Validate(token.Token)
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := issuer.Issue("session-1")
		require.NoError(t, err)

		_, err = issuer.Validate(token.Token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer([]byte("other-secret"), time.Hour)
		token, err := other.Issue("session-1")
		require.NoError(t, err)

		_, err = issuer.Validate(token.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Validate("invalid-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Minute)
	start := time.Now()
	issuer.now = func() time.Time { return start }

	token, err := issuer.Issue("session-1")
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = issuer.Validate(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
