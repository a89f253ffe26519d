/*
Package config holds the application configuration of the syllabo tools.

Configuration is read from a YAML file and from environment variables, with
environment variables taking precedence over the file and the file taking
precedence over defaults.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"strings"
)

// Config is the root application configuration.
type Config struct {
	Inventory string         `yaml:"inventory" env:"SYLLABO_INVENTORY"`
	Lexicon   string         `yaml:"lexicon"   env:"SYLLABO_LEXICON"`
	Trace     TraceConfig    `yaml:"trace"`
	Analysis  AnalysisConfig `yaml:"analysis"`
}

// TraceConfig holds tracing settings.
type TraceConfig struct {
	Level string `yaml:"level" env:"SYLLABO_TRACE_LEVEL" env-default:"Info"`
}

// AnalysisConfig holds settings for word analysis.
type AnalysisConfig struct {
	ChunkSize int `yaml:"chunk_size" env:"SYLLABO_CHUNK_SIZE" env-default:"100"`
	// Ignored replaces the ignored characters of the inventory if
	// OverrideIgnored is set.
	Ignored         string `yaml:"ignored"          env:"SYLLABO_IGNORED"`
	OverrideIgnored bool   `yaml:"override_ignored" env:"SYLLABO_OVERRIDE_IGNORED" env-default:"false"`
}

var traceLevels = []string{"debug", "info", "error"}

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	level := strings.ToLower(c.Trace.Level)
	valid := false
	for _, l := range traceLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("trace.level must be one of %v (got %q)", traceLevels, c.Trace.Level)
	}
	if c.Analysis.ChunkSize < 1 {
		return fmt.Errorf("analysis.chunk_size must be > 0 (got %d)", c.Analysis.ChunkSize)
	}
	return nil
}
