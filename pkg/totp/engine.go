package totp

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// Digits is the fixed length of generated codes.
	Digits = 6
	// Period is the length of one time step in seconds (RFC 6238 standard).
	Period = 30
	// DefaultWindow is the validation window applied by New, measured in
	// time steps on each side of the current one.
	DefaultWindow = 5
)

// codeModulus reduces the 31-bit truncated value to Digits decimal digits.
const codeModulus = 1_000_000

// Engine generates and validates one-time codes. The hash provider is
// deliberately swappable at runtime: a host may start without one and attach
// it later, and every code operation degrades to ErrProviderUnavailable in
// the meantime instead of failing hard.
//
// The zero value has no provider, a zero window, and the wall clock as its
// time source; use New to get the defaults.
type Engine struct {
	provider HashProvider
	window   int
	clock    func() time.Time
	compare  func(a, b string) bool
}

// Option configures an Engine constructed by New.
type Option func(*Engine)

// WithProvider sets the HMAC provider backing code generation.
func WithProvider(p HashProvider) Option {
	return func(e *Engine) { e.provider = p }
}

// WithWindow sets the validation window in time steps. Zero rejects every
// code; negative values behave like zero.
func WithWindow(window int) Option {
	return func(e *Engine) { e.window = window }
}

// WithClock replaces the engine's time source. Intended for tests and for
// hosts that already carry an adjustable clock.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithConstantTimeCompare makes code validation compare candidate codes in
// constant time.
func WithConstantTimeCompare() Option {
	return func(e *Engine) {
		e.compare = func(a, b string) bool {
			return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
		}
	}
}

// New returns an Engine with DefaultWindow, the wall clock, and plain string
// comparison, then applies the given options. An engine built without
// WithProvider reports ErrProviderUnavailable from every code operation
// until SetProvider attaches one.
func New(opts ...Option) *Engine {
	e := &Engine{
		window:  DefaultWindow,
		clock:   time.Now,
		compare: func(a, b string) bool { return a == b },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetProvider swaps the HMAC provider used by subsequent operations.
// Passing nil detaches the current provider and returns the engine to the
// unavailable state. Hosts that share an engine across goroutines must
// synchronize the swap themselves.
func (e *Engine) SetProvider(p HashProvider) {
	e.provider = p
}

// Provider returns the currently attached provider, or nil when the engine
// is unavailable.
func (e *Engine) Provider() HashProvider {
	return e.provider
}

// Window returns the validation window used by Validate.
func (e *Engine) Window() int {
	return e.window
}

// Generate computes the code for an explicit counter value (RFC 4226 HOTP).
// The secret is decoded leniently via DecodeSecret, so separators and
// padding in stored secrets are harmless. Providers whose digests cannot
// carry the truncation slice fail with ErrDigestTooShort.
func (e *Engine) Generate(secret string, counter uint64) (string, error) {
	if e.provider == nil {
		return "", ErrProviderUnavailable
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	digest := e.provider.HMAC(DecodeSecret(secret), msg[:])
	if len(digest) < 4 {
		return "", fmt.Errorf("%w: %d-byte digest", ErrDigestTooShort, len(digest))
	}

	// Dynamic truncation (RFC 4226): the low nibble of the last digest
	// byte selects a 4-byte slice, whose MSB is cleared to keep the
	// value positive.
	offset := int(digest[len(digest)-1] & 0x0f)
	if offset+4 > len(digest) {
		return "", fmt.Errorf("%w: offset %d in a %d-byte digest", ErrDigestTooShort, offset, len(digest))
	}
	value := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%06d", value%codeModulus), nil
}

// GenerateAt computes the code for the time step containing at.
func (e *Engine) GenerateAt(secret string, at time.Time) (string, error) {
	return e.Generate(secret, uint64(at.Unix()/Period))
}

// Code computes the code for the current time step.
func (e *Engine) Code(secret string) (string, error) {
	return e.GenerateAt(secret, e.now())
}

// Validate checks a candidate code against the engine's configured window.
func (e *Engine) Validate(secret, code string) (bool, error) {
	return e.ValidateWindow(secret, code, e.window)
}

// ValidateWindow checks a candidate code against every time step within
// window steps of now. The range is half-open: with window w and current
// Unix time t it spans counters [(t-30w)/30, (t+30w)/30), so a code for the
// upper-bound step is rejected. A window of zero or less accepts nothing.
func (e *Engine) ValidateWindow(secret, code string, window int) (bool, error) {
	if e.provider == nil {
		return false, ErrProviderUnavailable
	}

	now := e.now().Unix()
	start := (now - int64(Period*window)) / Period
	end := (now + int64(Period*window)) / Period
	for counter := start; counter < end; counter++ {
		generated, err := e.Generate(secret, uint64(counter))
		if err != nil {
			return false, err
		}
		if e.equal(generated, code) {
			return true, nil
		}
	}

	return false, nil
}

func (e *Engine) now() time.Time {
	if e.clock != nil {
		return e.clock()
	}
	return time.Now()
}

func (e *Engine) equal(a, b string) bool {
	if e.compare != nil {
		return e.compare(a, b)
	}
	return a == b
}
