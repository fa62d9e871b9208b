package pipeline

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config disables or re-enables resolvers by id after planning (spec
// §4.8 "Configuration"). Enable always wins over Disable, so a later
// enable call (or a later-loaded config layer) can override an earlier
// disable — the same idempotent-override rule cobra flag layering uses
// against a yaml base config.
type Config struct {
	Disable map[string]bool `yaml:"disable"`
	Enable  map[string]bool `yaml:"enable"`
}

// NewConfig returns an empty Config (nothing disabled).
func NewConfig() *Config {
	return &Config{Disable: map[string]bool{}, Enable: map[string]bool{}}
}

// WithDisabled marks ids as disabled, returning cfg for chaining.
func (cfg *Config) WithDisabled(ids ...string) *Config {
	for _, id := range ids {
		cfg.Disable[id] = true
	}
	return cfg
}

// WithEnabled marks ids as enabled, overriding any prior Disable.
func (cfg *Config) WithEnabled(ids ...string) *Config {
	for _, id := range ids {
		cfg.Enable[id] = true
	}
	return cfg
}

// isEnabled reports whether a resolver id survives disable/enable
// layering: enabled unless disabled, unless also explicitly re-enabled.
func (cfg *Config) isEnabled(id string) bool {
	if cfg == nil {
		return true
	}
	if cfg.Enable[id] {
		return true
	}
	return !cfg.Disable[id]
}

// LoadConfigFile reads a Config from a YAML file shaped like:
//
//	disable: [resolver-a, resolver-b]
//	enable: [resolver-c]
//
// This is the config format cmd/spanctl loads (spanctl.yaml).
func LoadConfigFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfigBytes(raw)
}

// LoadConfigBytes parses YAML config bytes into a Config.
func LoadConfigBytes(raw []byte) (*Config, error) {
	var doc struct {
		Disable []string `yaml:"disable"`
		Enable  []string `yaml:"enable"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	cfg := NewConfig()
	cfg.WithDisabled(doc.Disable...)
	cfg.WithEnabled(doc.Enable...)
	return cfg, nil
}
