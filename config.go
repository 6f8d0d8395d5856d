package revaluation

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultPrefix = "revaluated"

// Config global revaluation configuration, e.g:
//
//     default_valuator: money
//     prefix: revaluated
//     append_revaluated: true
type Config struct {
	// DefaultValuator valuator identifier of attributes declared without explicit valuator
	DefaultValuator string `yaml:"default_valuator"`
	// Prefix of the virtual `<prefix>_<attribute>` names
	Prefix string `yaml:"prefix"`
	// AppendRevaluated when false, the export includes the `<prefix>_<attribute>` values.
	// Default is true.
	AppendRevaluated *bool `yaml:"append_revaluated"`
}

// DefaultConfig returns the config used when none was set
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DefaultValuator == "" {
		c.DefaultValuator = IdentityValuator
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.AppendRevaluated == nil {
		v := true
		c.AppendRevaluated = &v
	}
}

// ParseConfig parses YAML data into config and fills the missing values with defaults
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfig loads config from YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return ParseConfig(data)
}

var (
	config   = DefaultConfig()
	configMu sync.RWMutex
)

// Clone returns a copy of c with defaults applied. The copy doesn't share
// AppendRevaluated with c. Nil returns the default config.
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	clone := *c
	if c.AppendRevaluated != nil {
		v := *c.AppendRevaluated
		clone.AppendRevaluated = &v
	}
	clone.applyDefaults()
	return &clone
}

// SetConfig replace the global config. Nil resets to defaults.
func SetConfig(cfg *Config) {
	cfg = cfg.Clone()
	configMu.Lock()
	defer configMu.Unlock()
	config = cfg
}

// GetConfig returns a copy of global config
func GetConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return *config.Clone()
}
