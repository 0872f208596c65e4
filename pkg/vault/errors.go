package vault

import "errors"

var (
	// Key errors
	ErrInvalidKey            = errors.New("invalid key: must be 32 bytes")
	ErrMasterKeyNotSet       = errors.New("vault master key not set")
	ErrFailedToLoadMasterKey = errors.New("failed to load master key")
	ErrFailedToGenerateKey   = errors.New("failed to generate key")
	ErrKeyDerivationFailed   = errors.New("key derivation failed")

	// Encryption/decryption errors
	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")
)
