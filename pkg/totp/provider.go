package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// HashProvider computes the keyed digests behind one-time codes. An Engine
// treats its provider as optional: code generation and validation report
// ErrProviderUnavailable until one is configured. Implementations must be
// safe for concurrent use.
type HashProvider interface {
	// Name returns the display name of the algorithm, e.g. "SHA256".
	Name() string
	// Size returns the digest length in bytes.
	Size() int
	// HMAC returns the keyed digest of message.
	HMAC(key, message []byte) []byte
}

type hmacProvider struct {
	name string
	fn   func() hash.Hash
	size int
}

func (p hmacProvider) Name() string { return p.name }
func (p hmacProvider) Size() int    { return p.size }

func (p hmacProvider) HMAC(key, message []byte) []byte {
	mac := hmac.New(p.fn, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// NewHashProvider wraps a hash constructor as a HashProvider. The name is
// reported as given and ends up in provisioning URIs, so it should match
// what authenticator apps expect ("SHA1", "SHA256", "SHA512"). Truncation
// reads four digest bytes at an offset taken from the final byte's low
// nibble, so constructors with digests shorter than 19 bytes can fail
// Generate with ErrDigestTooShort.
func NewHashProvider(name string, fn func() hash.Hash) HashProvider {
	return hmacProvider{name: name, fn: fn, size: fn().Size()}
}

// SHA1 returns the HMAC-SHA1 provider. It remains the interoperability
// baseline for authenticator apps (RFC 6238 reference algorithm).
func SHA1() HashProvider { return NewHashProvider("SHA1", sha1.New) }

// SHA256 returns the HMAC-SHA256 provider.
func SHA256() HashProvider { return NewHashProvider("SHA256", sha256.New) }

// SHA512 returns the HMAC-SHA512 provider.
func SHA512() HashProvider { return NewHashProvider("SHA512", sha512.New) }

// LookupProvider resolves a configured algorithm name to a provider.
// Names are matched case-insensitively with surrounding space ignored.
func LookupProvider(name string) (HashProvider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sha1":
		return SHA1(), nil
	case "sha256":
		return SHA256(), nil
	case "sha512":
		return SHA512(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
