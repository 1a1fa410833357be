package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/ports"
)

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new records.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.HistoryStore
	config EncryptionConfig
}

// NewEncryption creates a middleware that encrypts the input text of each
// record at rest using AES-GCM. Result, outcome and timestamp stay in the
// clear so the tape remains queryable for monitoring.
func NewEncryption(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.HistoryStore) ports.HistoryStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}
}

func (m *encryptionMiddleware) Record(ctx context.Context, calc domain.Calculation) error {
	ciphertext, err := encrypt([]byte(calc.Input), m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt input: %w", err)
	}
	calc.Input = base64.StdEncoding.EncodeToString(ciphertext)
	return m.next.Record(ctx, calc)
}

func (m *encryptionMiddleware) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	recs, err := m.next.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		plain, err := m.decryptInput(recs[i].Input)
		if err != nil {
			// A record no key can open anymore is redacted instead of
			// failing the whole read.
			recs[i].Input = "***"
			continue
		}
		recs[i].Input = plain
	}
	return recs, nil
}

func (m *encryptionMiddleware) Clear(ctx context.Context) error {
	return m.next.Clear(ctx)
}

func (m *encryptionMiddleware) decryptInput(encoded string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext base64: %w", err)
	}

	plain, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	// Try active key first
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	// Try fallbacks in order
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertextBytes := ciphertext[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertextBytes, nil)
}
