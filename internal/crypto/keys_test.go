package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, SaltLen)

	salt2, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt1, salt2)
}

func TestDeriveAuthKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	key1, err := DeriveAuthKey("password123", "owner", salt)
	require.NoError(t, err)
	assert.Len(t, key1, Argon2KeyLen)

	key2, err := DeriveAuthKey("password123", "owner", salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)
}

func TestDeriveAuthKey_InputsChangeKey(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	base, err := DeriveAuthKey("password123", "owner", salt)
	require.NoError(t, err)

	otherUser, err := DeriveAuthKey("password123", "clerk", salt)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherUser, "same password on another account must derive a different key")

	otherPass, err := DeriveAuthKey("password124", "owner", salt)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherPass)

	otherSalt, err := DeriveAuthKey("password123", "owner", []byte("fedcba9876543210fedcba9876543210"))
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSalt)
}

func TestDeriveAuthKey_Validation(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	_, err := DeriveAuthKey("", "owner", salt)
	assert.Error(t, err)

	_, err = DeriveAuthKey("password123", "owner", nil)
	assert.Error(t, err)
}

func TestDeriveAuthKeyFromBase64Salt(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	encoded := base64.StdEncoding.EncodeToString(salt)

	fromRaw, err := DeriveAuthKey("password123", "owner", salt)
	require.NoError(t, err)

	fromB64, err := DeriveAuthKeyFromBase64Salt("password123", "owner", encoded)
	require.NoError(t, err)
	assert.Equal(t, fromRaw, fromB64)

	_, err = DeriveAuthKeyFromBase64Salt("password123", "owner", "!!not-base64!!")
	assert.Error(t, err)
}

func TestHashAuthKey(t *testing.T) {
	hash, err := HashAuthKey([]byte("some-derived-key"))
	require.NoError(t, err)
	assert.Len(t, hash, 64, "sha-256 hex digest")

	again, err := HashAuthKey([]byte("some-derived-key"))
	require.NoError(t, err)
	assert.Equal(t, hash, again)

	_, err = HashAuthKey(nil)
	assert.Error(t, err)
}
