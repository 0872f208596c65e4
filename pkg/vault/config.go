package vault

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

// Config carries the vault settings a host process reads from its
// environment.
type Config struct {
	MasterKey string `env:"TOTP_MASTER_KEY"` // Base64-encoded 32-byte key protecting stored secrets
}

// LoadConfig reads the vault configuration from the environment once per
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

// Key decodes the configured master key. It fails with ErrMasterKeyNotSet
// when the environment variable is absent or empty.
func (c Config) Key() ([]byte, error) {
	return DecodeMasterKey(c.MasterKey)
}
