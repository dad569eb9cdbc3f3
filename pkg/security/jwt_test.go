package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	tok, err := j.Issue("alice@example.com")
	require.NoError(t, err)

	subject, err := j.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestJWTIssueDistinctTokens(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	// Same subject, same second: the jti must still keep them apart
	first, err := j.Issue("alice@example.com")
	require.NoError(t, err)
	second, err := j.Issue("alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, tok := range []string{first, second} {
		subject, err := j.Validate(tok)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", subject)
	}
}

func TestJWTExpired(t *testing.T) {
	j := NewJWT("test-secret", -time.Minute)

	tok, err := j.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = j.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTWrongSecret(t *testing.T) {
	tok, err := NewJWT("test-secret", time.Hour).Issue("alice@example.com")
	require.NoError(t, err)

	_, err = NewJWT("other-secret", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTMalformed(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	_, err := j.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = j.Validate("")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestJWTRejectsNoneAlgorithm(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTEmptySubject(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	tok, err := j.Issue("")
	require.NoError(t, err)

	_, err = j.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
