package vault

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required key length for AES-256.
	KeySize = 32

	// keyInfo separates vault key derivation from any other HKDF use of
	// the same master key.
	keyInfo = "otpkit-vault-v1"
)

// DeriveAccountKey derives the per-account encryption key from the vault
// master key using HKDF-SHA-256 with the account name as salt. Every
// account gets its own key, so one leaked derived key never exposes
// another account's secret.
func DeriveAccountKey(masterKey []byte, account string) ([]byte, error) {
	if len(masterKey) != KeySize {
		return nil, errors.Join(ErrKeyDerivationFailed, ErrInvalidKey)
	}

	reader := hkdf.New(sha256.New, masterKey, []byte(account), []byte(keyInfo))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// GenerateMasterKey creates a new random 32-byte master key.
func GenerateMasterKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateKey, err)
	}
	return key, nil
}

// EncodeMasterKey returns the base64 form of a master key, suitable for the
// TOTP_MASTER_KEY environment variable.
func EncodeMasterKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeMasterKey parses a base64-encoded 32-byte master key.
func DecodeMasterKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.Join(ErrFailedToLoadMasterKey, ErrMasterKeyNotSet)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadMasterKey, err)
	}
	if len(key) != KeySize {
		return nil, errors.Join(ErrFailedToLoadMasterKey, ErrInvalidKey)
	}
	return key, nil
}
