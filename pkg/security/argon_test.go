package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonRoundTrip(t *testing.T) {
	a := NewArgon()

	hash, err := a.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := a.VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgonSaltsDiffer(t *testing.T) {
	a := NewArgon()

	h1, err := a.HashPassword("same password")
	require.NoError(t, err)
	h2, err := a.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgonVerifyOldParameters(t *testing.T) {
	// Parameters live in the PHC string, so hashes survive retuning
	old := &ArgonHash{Memory: 32 * 1024, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32}

	hash, err := old.HashPassword("legacy password")
	require.NoError(t, err)

	ok, err := NewArgon().VerifyPassword("legacy password", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgonBadHashFormat(t *testing.T) {
	a := NewArgon()

	for _, bad := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
	} {
		_, err := a.VerifyPassword("whatever", bad)
		assert.ErrorIs(t, err, ErrBadHashFormat, bad)
	}
}
