package totp

import (
	"crypto/rand"
	"errors"
	"io"
)

// DefaultSecretLength is the number of random bytes in a generated shared
// secret. Ten bytes encode to sixteen Base32 characters with no padding,
// which keeps provisioning URIs and manual entry short.
const DefaultSecretLength = 10

// GenerateSecret draws length random bytes from random and returns both the
// raw secret and its encoded form. A nil reader falls back to crypto/rand;
// lengths below one fall back to DefaultSecretLength.
func GenerateSecret(random io.Reader, length int) ([]byte, string, error) {
	if random == nil {
		random = rand.Reader
	}
	if length < 1 {
		length = DefaultSecretLength
	}

	raw := make([]byte, length)
	if _, err := io.ReadFull(random, raw); err != nil {
		return nil, "", errors.Join(ErrFailedToGenerateSecret, err)
	}

	return raw, EncodeSecret(raw, 0), nil
}
