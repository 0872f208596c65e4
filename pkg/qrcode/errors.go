package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when the content is empty or whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrEncodeFailed is returned when QR encoding fails, typically because
	// the content exceeds QR capacity at the chosen correction level.
	ErrEncodeFailed = errors.New("failed to encode QR code")
)
