package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the configuration file used if neither an explicit path nor
// SYLLABO_CONFIG is given.
const DefaultPath = "./syllabo.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// If path is empty, it is taken from SYLLABO_CONFIG, falling back to
// DefaultPath. A missing file is an error only if the path has been given
// explicitly; otherwise configuration is loaded from ENV and defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		path = os.Getenv("SYLLABO_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// IgnoredOverride returns the ignored characters to use instead of the
// inventory's setting, if configured.
func (c *Config) IgnoredOverride() (string, bool) {
	return c.Analysis.Ignored, c.Analysis.OverrideIgnored
}
