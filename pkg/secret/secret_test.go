package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	store, err := New("test-passphrase")
	require.NoError(t, err)

	ct, err := store.Encrypt("login:password")
	require.NoError(t, err)
	assert.NotContains(t, ct, "login:password")

	pt, err := store.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "login:password", pt)
}

func TestEncryptIsRandomized(t *testing.T) {
	store, err := New("test-passphrase")
	require.NoError(t, err)

	a, err := store.Encrypt("same input")
	require.NoError(t, err)
	b, err := store.Encrypt("same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecryptWithRotatedKey(t *testing.T) {
	oldStore, err := New("old-passphrase")
	require.NoError(t, err)
	newStore, err := New("new-passphrase")
	require.NoError(t, err)

	ct, err := oldStore.Encrypt("credential")
	require.NoError(t, err)

	_, err = newStore.Decrypt(ct)
	assert.ErrorIs(t, err, ErrCorruptSecret)
}

func TestDecryptCorruptInput(t *testing.T) {
	store, err := New("test-passphrase")
	require.NoError(t, err)

	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "No key id prefix", ciphertext: "bm9wZQ=="},
		{name: "Unknown key id", ciphertext: "v9:bm9wZQ=="},
		{name: "Not base64", ciphertext: "v1:%%%"},
		{name: "Too short", ciphertext: "v1:aaaa"},
		{name: "Empty", ciphertext: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Decrypt(tt.ciphertext)
			assert.ErrorIs(t, err, ErrCorruptSecret)
		})
	}
}
