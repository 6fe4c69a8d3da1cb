package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)

	tok, err := m.Issue(42, "ann@example.com")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "ann@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Minute)
	issuedAt := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issuedAt }

	tok, err := m.Issue(1, "u1@example.com")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("right-secret", time.Hour).Issue(2, "u2@example.com")
	require.NoError(t, err)

	_, err = NewManager("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestVerify_MalformedStrings(t *testing.T) {
	t.Parallel()

	m := NewManager("k", time.Hour)

	for _, raw := range []string{"not-a-jwt", "a.b.c", "", strings.Repeat("x", 40)} {
		_, err := m.Verify(raw)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", raw)
	}
}

func TestVerify_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: 3, Email: "x@example.com"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("k", time.Hour).Verify(raw)
	assert.Error(t, err)
}
