package totp_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/otpkit/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfcSecret is the ASCII key "12345678901234567890" from the RFC 4226 and
// RFC 6238 test vectors in its encoded form.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

// fixedProvider returns the same digest regardless of input, which makes
// every counter produce one known code.
type fixedProvider struct {
	name   string
	digest []byte
}

func (p fixedProvider) Name() string            { return p.name }
func (p fixedProvider) Size() int               { return len(p.digest) }
func (p fixedProvider) HMAC(_, _ []byte) []byte { return p.digest }

// digestWithValue builds a 20-byte digest whose dynamic truncation yields
// exactly value: the last byte keeps the offset at zero and the leading
// four bytes carry the value big-endian.
func digestWithValue(value uint32) []byte {
	digest := make([]byte, 20)
	digest[0] = byte(value >> 24)
	digest[1] = byte(value >> 16)
	digest[2] = byte(value >> 8)
	digest[3] = byte(value)
	return digest
}

// counterProvider fabricates digests whose truncated value equals the low
// bits of the counter, so the expected code for counter c is c modulo 10^6
// zero-padded to six digits. That makes window boundaries checkable without
// trusting any real hash output.
type counterProvider struct{}

func (counterProvider) Name() string { return "STUB" }
func (counterProvider) Size() int    { return 20 }

func (counterProvider) HMAC(_, message []byte) []byte {
	digest := make([]byte, 20)
	copy(digest[0:4], message[4:8])
	return digest
}

func TestEngineGenerate(t *testing.T) {
	t.Parallel()
	engine := totp.New(totp.WithProvider(totp.SHA1()))

	tests := []struct {
		name    string
		counter uint64
		want    string
	}{
		{name: "counter 0", counter: 0, want: "755224"},
		{name: "counter 1", counter: 1, want: "287082"},
		{name: "counter 2", counter: 2, want: "359152"},
		{name: "counter 37037036 keeps leading zero", counter: 37037036, want: "081804"},
		{name: "counter 37037037", counter: 37037037, want: "050471"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, err := engine.Generate(rfcSecret, tt.counter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestEngineGenerate_LenientSecret(t *testing.T) {
	t.Parallel()
	engine := totp.New(totp.WithProvider(totp.SHA1()))

	code, err := engine.Generate("GEZD-GNBV-GY3T-QOJQ-GEZD-GNBV-GY3T-QOJQ", 0)
	require.NoError(t, err)
	assert.Equal(t, "755224", code)
}

func TestEngineGenerate_EmptySecret(t *testing.T) {
	t.Parallel()
	engine := totp.New(totp.WithProvider(totp.SHA1()))

	code, err := engine.Generate("", 0)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)
}

func TestEngineGenerate_ZeroPadding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value uint32
		want  string
	}{
		{name: "42 pads to six digits", value: 42, want: "000042"},
		{name: "zero value", value: 0, want: "000000"},
		{name: "seven digit value wraps", value: 1234567, want: "234567"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			engine := totp.New(totp.WithProvider(fixedProvider{
				name:   "STUB",
				digest: digestWithValue(tt.value),
			}))
			code, err := engine.Generate("AAAA", 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestEngineGenerate_ShortDigest(t *testing.T) {
	t.Parallel()

	t.Run("offset fits inside a short digest", func(t *testing.T) {
		t.Parallel()
		// 16 zero bytes keep the offset at zero, so the slice still fits.
		engine := totp.New(totp.WithProvider(fixedProvider{
			name:   "STUB",
			digest: make([]byte, 16),
		}))

		code, err := engine.Generate("AAAA", 0)
		require.NoError(t, err)
		assert.Equal(t, "000000", code)
	})

	t.Run("offset beyond a short digest", func(t *testing.T) {
		t.Parallel()
		digest := make([]byte, 16)
		digest[15] = 0x0f // offset 15 needs bytes 15..18

		engine := totp.New(totp.WithProvider(fixedProvider{name: "STUB", digest: digest}))

		_, err := engine.Generate("AAAA", 0)
		require.ErrorIs(t, err, totp.ErrDigestTooShort)

		ok, err := engine.Validate("AAAA", "000000")
		require.ErrorIs(t, err, totp.ErrDigestTooShort)
		assert.False(t, ok)
	})

	t.Run("empty digest", func(t *testing.T) {
		t.Parallel()
		engine := totp.New(totp.WithProvider(fixedProvider{name: "STUB", digest: nil}))

		_, err := engine.Generate("AAAA", 0)
		require.ErrorIs(t, err, totp.ErrDigestTooShort)
	})
}

func TestEngineGenerateAt(t *testing.T) {
	t.Parallel()
	engine := totp.New(totp.WithProvider(totp.SHA1()))

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "1970-01-01 00:00:59", at: time.Unix(59, 0), want: "287082"},
		{name: "2005-03-18 01:58:29", at: time.Unix(1111111109, 0), want: "081804"},
		{name: "2005-03-18 01:58:31", at: time.Unix(1111111111, 0), want: "050471"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, err := engine.GenerateAt(rfcSecret, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestEngineCode(t *testing.T) {
	t.Parallel()
	engine := totp.New(
		totp.WithProvider(totp.SHA1()),
		totp.WithClock(func() time.Time { return time.Unix(1111111111, 0) }),
	)

	code, err := engine.Code(rfcSecret)
	require.NoError(t, err)
	assert.Equal(t, "050471", code)
}

func TestEngineProviderUnavailable(t *testing.T) {
	t.Parallel()

	t.Run("engine without provider", func(t *testing.T) {
		t.Parallel()
		engine := totp.New()

		code, err := engine.Generate(rfcSecret, 0)
		require.ErrorIs(t, err, totp.ErrProviderUnavailable)
		assert.Empty(t, code)

		code, err = engine.Code(rfcSecret)
		require.ErrorIs(t, err, totp.ErrProviderUnavailable)
		assert.Empty(t, code)

		ok, err := engine.Validate(rfcSecret, "755224")
		require.ErrorIs(t, err, totp.ErrProviderUnavailable)
		assert.False(t, ok)
	})

	t.Run("zero value engine", func(t *testing.T) {
		t.Parallel()
		var engine totp.Engine

		_, err := engine.Generate(rfcSecret, 0)
		require.ErrorIs(t, err, totp.ErrProviderUnavailable)

		ok, err := engine.ValidateWindow(rfcSecret, "755224", 1)
		require.ErrorIs(t, err, totp.ErrProviderUnavailable)
		assert.False(t, ok)
	})

	t.Run("provider attached later", func(t *testing.T) {
		t.Parallel()
		engine := totp.New()
		engine.SetProvider(totp.SHA1())

		code, err := engine.Generate(rfcSecret, 0)
		require.NoError(t, err)
		assert.Equal(t, "755224", code)
	})

	t.Run("provider detached again", func(t *testing.T) {
		t.Parallel()
		engine := totp.New(totp.WithProvider(totp.SHA1()))
		engine.SetProvider(nil)

		_, err := engine.Generate(rfcSecret, 0)
		require.ErrorIs(t, err, totp.ErrProviderUnavailable)
	})
}

func TestEngineValidateWindow(t *testing.T) {
	t.Parallel()

	// 1111111110 is exactly 30*37037037, so the current step is 37037037
	// and codes fabricated by counterProvider are "037036", "037037", ...
	clock := func() time.Time { return time.Unix(1111111110, 0) }
	engine := totp.New(totp.WithProvider(counterProvider{}), totp.WithClock(clock))

	tests := []struct {
		name   string
		code   string
		window int
		want   bool
	}{
		{name: "current step accepted", code: "037037", window: 1, want: true},
		{name: "previous step accepted", code: "037036", window: 1, want: true},
		{name: "upper bound step rejected", code: "037038", window: 1, want: false},
		{name: "below range rejected", code: "037035", window: 1, want: false},
		{name: "wider window accepts below", code: "037035", window: 2, want: true},
		{name: "wider window accepts above", code: "037038", window: 2, want: true},
		{name: "wider window upper bound rejected", code: "037039", window: 2, want: false},
		{name: "zero window accepts nothing", code: "037037", window: 0, want: false},
		{name: "negative window accepts nothing", code: "037037", window: -1, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, err := engine.ValidateWindow("AAAA", tt.code, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestEngineValidate_UsesConfiguredWindow(t *testing.T) {
	t.Parallel()
	clock := func() time.Time { return time.Unix(1111111110, 0) }
	engine := totp.New(
		totp.WithProvider(counterProvider{}),
		totp.WithClock(clock),
		totp.WithWindow(1),
	)

	ok, err := engine.Validate("AAAA", "037036")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Validate("AAAA", "037038")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineValidate_RFCVectors(t *testing.T) {
	t.Parallel()
	engine := totp.New(
		totp.WithProvider(totp.SHA1()),
		totp.WithClock(func() time.Time { return time.Unix(1111111110, 0) }),
		totp.WithWindow(1),
	)

	for _, code := range []string{"081804", "050471"} {
		ok, err := engine.Validate(rfcSecret, code)
		require.NoError(t, err)
		assert.True(t, ok, "code %s should fall inside the window", code)
	}
}

func TestEngineSetProvider_Rebind(t *testing.T) {
	t.Parallel()
	alpha := fixedProvider{name: "ALPHA", digest: digestWithValue(42)}
	beta := fixedProvider{name: "BETA", digest: digestWithValue(256)}

	engine := totp.New(totp.WithProvider(alpha))

	code, err := engine.Generate("AAAA", 7)
	require.NoError(t, err)
	require.Equal(t, "000042", code)

	engine.SetProvider(beta)

	code, err = engine.Generate("AAAA", 7)
	require.NoError(t, err)
	assert.Equal(t, "000256", code)

	ok, err := engine.Validate("AAAA", "000042")
	require.NoError(t, err)
	assert.False(t, ok, "codes from the previous provider must not verify")

	ok, err = engine.Validate("AAAA", "000256")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngineValidate_ConstantTimeCompare(t *testing.T) {
	t.Parallel()
	engine := totp.New(
		totp.WithProvider(fixedProvider{name: "STUB", digest: digestWithValue(42)}),
		totp.WithConstantTimeCompare(),
	)

	ok, err := engine.Validate("AAAA", "000042")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Validate("AAAA", "000043")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineDefaults(t *testing.T) {
	t.Parallel()

	engine := totp.New()
	assert.Equal(t, totp.DefaultWindow, engine.Window())
	assert.Nil(t, engine.Provider())

	engine = totp.New(totp.WithProvider(totp.SHA256()), totp.WithWindow(2))
	assert.Equal(t, 2, engine.Window())
	require.NotNil(t, engine.Provider())
	assert.Equal(t, "SHA256", engine.Provider().Name())
}
