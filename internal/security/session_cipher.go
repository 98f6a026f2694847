package security

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
)

// sealedValuePrefix versions the cookie format so a future scheme change can
// invalidate old cookies instead of misreading them.
const sealedValuePrefix = "s1:"

const MinKeyLen = 32

var (
	ErrInvalidSessionKey = errors.New("invalid session key")
	ErrSealedValue       = errors.New("invalid sealed value")
)

// SessionCipher seals session records for cookie transport with AES-256-GCM.
// The AES key is derived from the configured secret, so any secret of at
// least MinKeyLen bytes works.
type SessionCipher struct {
	aead cipher.AEAD
}

func NewSessionCipher(secret string) (*SessionCipher, error) {
	if len(strings.TrimSpace(secret)) < MinKeyLen {
		return nil, ErrInvalidSessionKey
	}
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create aes cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return &SessionCipher{aead: aead}, nil
}

func (c *SessionCipher) Seal(plain []byte) (string, error) {
	if c == nil || c.aead == nil {
		return "", ErrInvalidSessionKey
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	ciphertext := c.aead.Seal(nil, nonce, plain, nil)
	payload := append(nonce, ciphertext...)
	return sealedValuePrefix + base64.RawURLEncoding.EncodeToString(payload), nil
}

func (c *SessionCipher) Open(value string) ([]byte, error) {
	if c == nil || c.aead == nil {
		return nil, ErrInvalidSessionKey
	}
	if !strings.HasPrefix(value, sealedValuePrefix) {
		return nil, ErrSealedValue
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(value, sealedValuePrefix))
	if err != nil {
		return nil, fmt.Errorf("decode sealed value: %w", err)
	}
	nonceSize := c.aead.NonceSize()
	if len(payload) <= nonceSize {
		return nil, ErrSealedValue
	}
	plain, err := c.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed value: %w", err)
	}
	return plain, nil
}
