package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "RLDASH"

type Config struct {
	Port            string        `mapstructure:"PORT"`
	MaxUploadBytes  int64         `mapstructure:"MAX_UPLOAD_BYTES"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from defaults, the optional file at path and
// RLDASH_* environment variables, in increasing order of precedence. PORT is
// also read unprefixed when RLDASH_PORT is unset. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "3030")
	v.SetDefault("MAX_UPLOAD_BYTES", 64<<20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	// Hosting platforms set a bare PORT.
	if err := v.BindEnv("PORT", envPrefix+"_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("bind PORT: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	return &cfg, nil
}
