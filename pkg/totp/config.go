package totp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

// Config carries the engine settings a host process reads from its
// environment. Window counts 30-second steps on each side of now; see
// Engine.ValidateWindow for the exact range semantics.
type Config struct {
	Algorithm string `env:"TOTP_ALGORITHM" envDefault:"sha256"` // HMAC algorithm backing the engine
	Window    int    `env:"TOTP_WINDOW" envDefault:"5"`         // Validation window in time steps
}

// LoadConfig reads the engine configuration from the environment once per
// process and returns the cached value on subsequent calls.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		err = env.Parse(&cfg)
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Provider resolves the configured algorithm name to a HashProvider.
func (c Config) Provider() (HashProvider, error) {
	return LookupProvider(c.Algorithm)
}

// Engine builds an Engine from the configuration. The error surfaces an
// unknown algorithm name; the returned engine is ready for use.
func (c Config) Engine() (*Engine, error) {
	provider, err := c.Provider()
	if err != nil {
		return nil, err
	}
	return New(WithProvider(provider), WithWindow(c.Window)), nil
}
