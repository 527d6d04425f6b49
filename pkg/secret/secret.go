// Package secret encrypts resource credentials at rest with AES-256-GCM.
// The cipher key is derived from a process-wide passphrase; every ciphertext
// carries a key id prefix so a future key rotation can tell old and new
// secrets apart instead of invalidating everything at once.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const keyID = "v1"

var ErrCorruptSecret = errors.New("secret was not produced by the current key")

type Store struct {
	aead cipher.AEAD
}

func New(passphrase string) (*Store, error) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(passphrase), nil, []byte("earnova-secret-"+keyID))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("can't derive cipher key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("can't build cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("can't build AEAD: %w", err)
	}

	return &Store{aead: aead}, nil
}

func (s *Store) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("can't read nonce: %w", err)
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return keyID + ":" + base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Store) Decrypt(ciphertext string) (string, error) {
	id, payload, ok := strings.Cut(ciphertext, ":")
	if !ok || id != keyID {
		return "", ErrCorruptSecret
	}

	sealed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrCorruptSecret
	}
	if len(sealed) < s.aead.NonceSize() {
		return "", ErrCorruptSecret
	}

	nonce, ct := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", ErrCorruptSecret
	}
	return string(plaintext), nil
}
