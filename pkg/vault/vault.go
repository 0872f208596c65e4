package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// EncryptSecret seals a plaintext secret with AES-256-GCM and returns the
// result as base64(nonce | ciphertext | tag). The nonce is prepended so the
// stored value is self-contained. The key is typically the output of
// DeriveAccountKey.
func EncryptSecret(key []byte, secret string) (string, error) {
	if len(key) != KeySize {
		return "", errors.Join(ErrEncryptionFailed, ErrInvalidKey)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	sealed := aesGCM.Seal(nonce, nonce, []byte(secret), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptSecret opens a value produced by EncryptSecret. Decryption fails
// with ErrDecryptionFailed when the key is wrong or the ciphertext was
// tampered with; the GCM tag covers both.
func DecryptSecret(key []byte, ciphertext string) (string, error) {
	if len(key) != KeySize {
		return "", errors.Join(ErrDecryptionFailed, ErrInvalidKey)
	}

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, ErrInvalidCiphertext, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(sealed) < nonceSize {
		return "", errors.Join(ErrDecryptionFailed, ErrInvalidCiphertext)
	}

	nonce, encrypted := sealed[:nonceSize], sealed[nonceSize:]
	plain, err := aesGCM.Open(nil, nonce, encrypted, nil)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	return string(plain), nil
}
