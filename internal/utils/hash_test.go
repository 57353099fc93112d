package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "my-secret-password"},
		{name: "empty password", password: ""},
		{name: "unicode password", password: "пароль-密码-🔑"},
		{name: "long password", password: strings.Repeat("a", 256)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			digest, err := HashPassword(test.password)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$"))
			assert.True(t, VerifyPassword(test.password, digest))
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// random salt per call: two hashes of the same password never match
	assert.NotEqual(t, first, second)

	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

func TestVerifyPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse-battery-staple")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		digest   string
		want     bool
	}{
		{name: "correct password", password: "correct-horse-battery-staple", digest: digest, want: true},
		{name: "wrong password", password: "incorrect-horse", digest: digest, want: false},
		{name: "empty password", password: "", digest: digest, want: false},
		{name: "empty digest", password: "correct-horse-battery-staple", digest: "", want: false},
		{name: "not a PHC string", password: "correct-horse-battery-staple", digest: "plaintext-garbage", want: false},
		{name: "wrong algorithm", password: "correct-horse-battery-staple", digest: "$bcrypt$v=19$m=65536,t=3,p=1$c2FsdHNhbHQ$aGFzaGhhc2g", want: false},
		{name: "corrupted salt", password: "correct-horse-battery-staple", digest: "$argon2id$v=19$m=65536,t=3,p=1$!!!$aGFzaGhhc2g", want: false},
		{name: "truncated digest", password: "correct-horse-battery-staple", digest: "$argon2id$v=19$m=65536,t=3,p=1", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, VerifyPassword(test.password, test.digest))
		})
	}
}
