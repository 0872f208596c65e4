// Package vault protects enrolled shared secrets at rest.
//
// Hosts persist each account's encoded secret so that codes can be
// validated on every login; storing those secrets in the clear turns any
// configuration or database leak into a second-factor bypass. This package
// seals them with AES-256 in GCM mode under a key derived per account from
// a single process-wide master key.
//
// # Architecture
//
//  1. Master key – a random 32-byte key, carried base64-encoded in the
//     TOTP_MASTER_KEY environment variable. GenerateMasterKey and
//     EncodeMasterKey produce new ones; DecodeMasterKey and Config.Key load
//     them back.
//  2. Key derivation – DeriveAccountKey stretches the master key through
//     HKDF-SHA-256, salted with the account name, so every account is
//     sealed under its own key.
//  3. Encryption / Decryption – EncryptSecret and DecryptSecret wrap
//     AES-256-GCM. The random nonce is prepended to the ciphertext and the
//     whole value is base64-encoded, making it safe to store in text
//     columns or configuration files.
//
// # Usage
//
//	masterKey, _ := vault.GenerateMasterKey()
//
//	key, _ := vault.DeriveAccountKey(masterKey, "alice@example.com")
//	sealed, _ := vault.EncryptSecret(key, "AAAQEAYEAUDAOCAJ")
//
//	// Later, before validating a code:
//	secret, err := vault.DecryptSecret(key, sealed)
//	if err != nil {
//	    // wrong key or tampered value
//	}
//
// # Error Handling
//
// All public functions return errors wrapped with errors.Join around
// package sentinels such as ErrEncryptionFailed, ErrDecryptionFailed, and
// ErrInvalidKey. Match them with errors.Is. A failed GCM open reports
// ErrDecryptionFailed without distinguishing a wrong key from tampering.
package vault
