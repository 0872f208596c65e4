package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
	"strings"
)

// recoveryCodeLength is the number of random bytes per recovery code; five
// bytes encode to exactly eight Base32 characters with no padding.
const recoveryCodeLength = 5

// GenerateRecoveryCodes creates single-use backup codes for accounts that
// lose access to their authenticator device. Codes come formatted as
// XXXX-XXXX over the same alphabet as shared secrets. A nil reader falls
// back to crypto/rand.
func GenerateRecoveryCodes(random io.Reader, count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}
	if random == nil {
		random = rand.Reader
	}

	codes := make([]string, count)
	buf := make([]byte, recoveryCodeLength)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, errors.Join(ErrFailedToGenerateRecoveryCode, err)
		}
		encoded := EncodeSecret(buf, 0)
		codes[i] = encoded[:4] + "-" + encoded[4:]
	}
	return codes, nil
}

// HashRecoveryCode creates the SHA-256 hex digest under which a code is
// stored. Codes are normalized first, so user input may vary case,
// hyphenation, and surrounding whitespace without breaking verification.
func HashRecoveryCode(code string) string {
	sum := sha256.Sum256([]byte(normalizeRecoveryCode(code)))
	return hex.EncodeToString(sum[:])
}

// VerifyRecoveryCode reports whether code matches a stored hash. The
// comparison runs in constant time to avoid leaking where digests diverge.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computed := HashRecoveryCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}

func normalizeRecoveryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, "-", "")
	return strings.ReplaceAll(code, " ", "")
}
