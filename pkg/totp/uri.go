package totp

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultAlgorithm is the algorithm advertised in provisioning URIs when
// none is set. SHA1 remains the value every authenticator app understands.
const DefaultAlgorithm = "SHA1"

// secretPattern matches encoded secrets: uppercase Base32 with optional
// trailing padding.
var secretPattern = regexp.MustCompile("^[A-Z2-7]+=*$")

// ProvisioningParams describes one enrolled account for URI generation.
type ProvisioningParams struct {
	Secret      string // Encoded shared secret (required)
	AccountName string // User identifier such as an email or nick (required)
	Issuer      string // Service name shown in authenticator apps (required)
	Algorithm   string // HMAC algorithm name (optional, defaults to SHA1)
	Digits      int    // Code length (optional, defaults to 6)
	Period      int    // Time step in seconds (optional, defaults to 30)
}

// Validate ensures the required provisioning fields are present and the
// secret is well-formed.
func (p ProvisioningParams) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !secretPattern.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// withDefaults returns a copy with standard values applied to unset fields.
func (p ProvisioningParams) withDefaults() ProvisioningParams {
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Digits == 0 {
		p.Digits = Digits
	}
	if p.Period == 0 {
		p.Period = Period
	}
	return p
}

// ProvisioningURI builds an otpauth:// URI for enrolling the account in an
// authenticator app. The format follows the Key Uri Format specification:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func ProvisioningURI(params ProvisioningParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	params = params.withDefaults()

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", strings.ToUpper(params.Algorithm))
	query.Set("digits", fmt.Sprintf("%d", params.Digits))
	query.Set("period", fmt.Sprintf("%d", params.Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}
