package totp

import "errors"

var (
	ErrProviderUnavailable          = errors.New("hash provider not configured")
	ErrUnknownAlgorithm             = errors.New("unknown hash algorithm")
	ErrDigestTooShort               = errors.New("digest too short for truncation")
	ErrMissingSecret                = errors.New("missing secret")
	ErrInvalidSecret                = errors.New("invalid secret")
	ErrMissingAccountName           = errors.New("missing account name")
	ErrMissingIssuer                = errors.New("missing issuer")
	ErrFailedToGenerateSecret       = errors.New("failed to generate shared secret")
	ErrInvalidRecoveryCodeCount     = errors.New("invalid recovery code count, must be greater than 0")
	ErrFailedToGenerateRecoveryCode = errors.New("failed to generate recovery code")
)
