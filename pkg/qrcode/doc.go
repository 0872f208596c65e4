// Package qrcode renders enrollment QR codes for authenticator apps.
//
// During second-factor enrollment the host displays the account's
// otpauth:// provisioning URI as a QR code so users scan it instead of
// typing the secret. The package wraps github.com/skip2/go-qrcode with
// input validation, sizing defaults, and selectable error correction.
//
// # Architecture
//
// Three functions cover the rendering surface:
//
//   • PNG returns the QR code as raw PNG bytes at medium error correction.
//   • PNGWithLevel does the same with an explicit correction Level, for
//     codes destined to printouts or low-quality displays.
//   • DataURI wraps the PNG in a data:image/png;base64 URI for direct
//     embedding in HTML or terminal image protocols.
//
// The content is opaque to this package; it renders any string, though in
// this module it is fed the URIs built by pkg/totp.
//
// # Usage
//
//	uri, _ := totp.ProvisioningURI(totp.ProvisioningParams{
//	    Secret:      "AAAQEAYEAUDAOCAJ",
//	    AccountName: "alice@example.com",
//	    Issuer:      "Acme",
//	})
//
//	img, err := qrcode.PNG(uri, qrcode.DefaultSize)
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   • ErrEmptyContent – the content argument was empty or whitespace.
//   • ErrEncodeFailed – the underlying library could not encode the
//     content, usually because it exceeds QR capacity.
//
// Wrap your error handling with errors.Is for robust comparisons.
package qrcode
