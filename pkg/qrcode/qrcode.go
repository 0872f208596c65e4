package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the image edge length in pixels used when no size is given.
const DefaultSize = 256

// Level selects the QR error correction strength. The zero value is
// LevelMedium, which PNG and DataURI use.
type Level int

const (
	LevelMedium  Level = iota // ~15% damage recovery
	LevelLow                  // ~7% damage recovery
	LevelHigh                 // ~25% damage recovery
	LevelHighest              // ~30% damage recovery
)

func (l Level) recoveryLevel() skipqrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return skipqrcode.Low
	case LevelHigh:
		return skipqrcode.High
	case LevelHighest:
		return skipqrcode.Highest
	default:
		return skipqrcode.Medium
	}
}

// PNG renders content as a square QR code PNG of the given size in pixels,
// using medium error correction. Sizes below one fall back to DefaultSize.
func PNG(content string, size int) ([]byte, error) {
	return PNGWithLevel(content, size, LevelMedium)
}

// PNGWithLevel renders content as a QR code PNG with an explicit error
// correction level. Higher levels survive worse screens and printouts at
// the cost of a denser code.
func PNGWithLevel(content string, size int, level Level) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size < 1 {
		size = DefaultSize
	}

	png, err := skipqrcode.Encode(content, level.recoveryLevel(), size)
	if err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}
	return png, nil
}

// DataURI renders content as a QR code PNG and wraps it in a
// data:image/png;base64 URI, ready to drop into an <img> tag or hand to a
// terminal that renders inline images.
func DataURI(content string, size int) (string, error) {
	png, err := PNG(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
