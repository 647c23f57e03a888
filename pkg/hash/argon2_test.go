package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("Pw123!")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hashed, "$argon2id$"))
	assert.True(t, CheckPasswordHash("Pw123!", hashed))
	assert.False(t, CheckPasswordHash("pw123!", hashed))
	assert.False(t, CheckPasswordHash("", hashed))
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("same-password", first))
	assert.True(t, CheckPasswordHash("same-password", second))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
	}
	for _, encoded := range cases {
		assert.False(t, CheckPasswordHash("anything", encoded), "hash %q", encoded)
	}
}

func TestCheckPasswordHash_TamperedHash(t *testing.T) {
	hashed, err := HashPassword("Pw123!")
	require.NoError(t, err)

	tampered := hashed[:len(hashed)-2] + "zz"
	assert.False(t, CheckPasswordHash("Pw123!", tampered))
}
