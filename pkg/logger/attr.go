package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Account records the account label under the key "account".
func Account(name string) slog.Attr {
	return slog.String("account", name)
}

// Algorithm records the HMAC algorithm name under the key "algorithm".
func Algorithm(name string) slog.Attr {
	return slog.String("algorithm", name)
}

// Window records the validation window in time steps under the key "window".
func Window(steps int) slog.Attr {
	return slog.Int("window", steps)
}

// Counter records an HOTP counter under the key "counter".
func Counter(counter uint64) slog.Attr {
	return slog.Uint64("counter", counter)
}

// Secret marks a shared secret in a log record without exposing it; only
// the encoded length reaches the output.
func Secret(encoded string) slog.Attr {
	return slog.String("secret", fmt.Sprintf("[redacted %d chars]", len(encoded)))
}
