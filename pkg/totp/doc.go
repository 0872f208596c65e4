// Package totp implements a second-factor engine for Time-based One-Time
// Passwords (TOTP) and the supporting pieces a host needs around it: shared
// secret generation, the Base32 codec secrets travel in, provisioning URIs
// for authenticator apps, and single-use recovery codes.
//
// The package is self-contained on purpose. It avoids third-party TOTP
// libraries so the code and codec semantics stay under this module's
// control, most importantly the lenient secret decoder and its padding
// scheme, which existing deployments depend on byte for byte.
//
// # Architecture
//
// Internally the package is divided into four cohesive layers.
//
//   • codec    – EncodeSecret and DecodeSecret in base32.go carry secrets
//     between their raw and Base32 forms. Decoding skips any character
//     outside the alphabet rather than failing, so secrets survive manual
//     entry with hyphens, spaces, or stray punctuation.
//
//   • engine   – Engine in engine.go computes RFC 4226 HOTP codes for
//     explicit counters (Generate), for points in time (GenerateAt, Code),
//     and validates candidate codes against a half-open window of time
//     steps (Validate, ValidateWindow). The engine's hash provider is
//     optional and swappable at runtime; without one every code operation
//     returns ErrProviderUnavailable instead of failing hard, mirroring
//     hosts whose crypto modules load and unload dynamically.
//
//   • secrets  – GenerateSecret in secret.go draws a fresh shared secret
//     from an injectable randomness source, and ProvisioningURI in uri.go
//     renders the otpauth:// enrollment URI understood by Google
//     Authenticator, 1Password, and compatible apps.
//
//   • recovery – helpers in recovery.go create, hash, and verify the backup
//     codes offered to users in case they permanently lose access to their
//     authenticator device.
//
// Engine settings are loaded once per process via the env tag aware loader
// in config.go. TOTP_ALGORITHM names the HMAC algorithm (sha1, sha256, or
// sha512; default sha256) and TOTP_WINDOW the validation window in
// 30-second steps (default 5).
//
// # Usage
//
// The minimal happy path for enrolling and validating a user:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/dmitrymomot/otpkit/pkg/totp"
//	)
//
//	func main() {
//	    // 1. Create a brand-new shared secret.
//	    _, secret, _ := totp.GenerateSecret(nil, totp.DefaultSecretLength)
//
//	    // 2. Display the bootstrap URI/QR code to the user.
//	    uri, _ := totp.ProvisioningURI(totp.ProvisioningParams{
//	        Secret:      secret,
//	        AccountName: "alice@example.com",
//	        Issuer:      "Acme",
//	    })
//	    fmt.Println(uri)
//
//	    // 3. Later – validate a code provided by the user.
//	    engine := totp.New(totp.WithProvider(totp.SHA256()))
//	    ok, _ := engine.Validate(secret, "123456")
//	    fmt.Println(ok)
//	}
//
// Hosts that must tolerate device clock drift tune the window per engine
// (WithWindow) or per call (ValidateWindow). Tests pin the clock with
// WithClock. Code comparison can be hardened with WithConstantTimeCompare.
//
// # Error Handling
//
// Every exported operation returns a descriptive error that may be wrapped
// using errors.Join. Inspect errors with errors.Is against package level
// sentinels such as ErrProviderUnavailable, ErrUnknownAlgorithm, and
// ErrInvalidSecret.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
//
// To explore more usage scenarios refer to the package level unit-tests.
package totp
