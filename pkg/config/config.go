// Package config carries the routing engine configuration.
//
// Configuration is an explicit value handed to the code that opens
// devices and engines; there is no package-level mutable state. The
// YAML layout is intentionally flat:
//
//	card: 0
//	definitions_dir: /etc/alsaroute
//	log_file: /var/log/alsaroute/card0.rlog
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures card selection, definitions lookup and event
// logging.
type Config struct {
	// Card is the sound card number. Negative means discover the
	// first card under DeviceDir.
	Card int `yaml:"card"`

	// DefinitionsDir is the directory holding the per-vendor
	// mixer_paths_<vendor>.xml files.
	DefinitionsDir string `yaml:"definitions_dir"`

	// ChipNamePattern overrides the sysfs chip-name file pattern.
	// Empty selects the kernel default.
	ChipNamePattern string `yaml:"chip_name_pattern"`

	// DeviceDir overrides the control device directory scanned for
	// card discovery. Empty selects /dev/snd.
	DeviceDir string `yaml:"device_dir"`

	// LogFile, when set, enables the CBOR event log at this path.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file is given:
// auto-discovered card, definitions under /etc/alsaroute, no event log.
func Default() Config {
	return Config{
		Card:           -1,
		DefinitionsDir: "/etc/alsaroute",
	}
}

// Parse parses a configuration from YAML bytes, applied over Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DefinitionsDir == "" {
		return nil, fmt.Errorf("definitions_dir must not be empty")
	}
	return &cfg, nil
}

// Load loads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}
