package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/e-Spirit/FSDevTools-sub000/internal/changeset"
)

// Backend selects the logger report lines are written through
type Backend string

const (
	BackendSlog Backend = "slog"
	BackendZap  Backend = "zap"
)

// Config represents the complete fsdevtools configuration
type Config struct {
	Report  ReportConfig  `yaml:"report" toml:"report"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ReportConfig configures change-set report rendering
type ReportConfig struct {
	AlignColumn  int                `yaml:"align_column" toml:"align_column"`
	Descriptions DescriptionsConfig `yaml:"descriptions" toml:"descriptions"`
	SummaryOnly  bool               `yaml:"summary_only" toml:"summary_only"`
}

// DescriptionsConfig holds the heading of each status bucket
type DescriptionsConfig struct {
	Created      string `yaml:"created" toml:"created"`
	Updated      string `yaml:"updated" toml:"updated"`
	Deleted      string `yaml:"deleted" toml:"deleted"`
	Moved        string `yaml:"moved" toml:"moved"`
	LostAndFound string `yaml:"lost_and_found" toml:"lost_and_found"`
}

// LoggingConfig configures log output
type LoggingConfig struct {
	Level   string  `yaml:"level" toml:"level"`
	Format  string  `yaml:"format" toml:"format"`
	Backend Backend `yaml:"backend" toml:"backend"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file. Files ending in .toml are
// parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.expandEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path, falling back to the defaults when the file does
// not exist
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// expandEnv expands environment variables in the bucket descriptions
func (c *Config) expandEnv() {
	d := &c.Report.Descriptions
	d.Created = os.ExpandEnv(d.Created)
	d.Updated = os.ExpandEnv(d.Updated)
	d.Deleted = os.ExpandEnv(d.Deleted)
	d.Moved = os.ExpandEnv(d.Moved)
	d.LostAndFound = os.ExpandEnv(d.LostAndFound)
}

// applyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) applyDefaults() {
	d := &c.Report.Descriptions
	if d.Created == "" {
		d.Created = "Created elements"
	}
	if d.Updated == "" {
		d.Updated = "Updated elements"
	}
	if d.Deleted == "" {
		d.Deleted = "Deleted elements"
	}
	if d.Moved == "" {
		d.Moved = "Moved elements"
	}
	if d.LostAndFound == "" {
		d.LostAndFound = "Lost and found elements"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = BackendSlog
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Report.AlignColumn < 0 {
		return fmt.Errorf("report.align_column must not be negative: %d", c.Report.AlignColumn)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid logging.level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
		// valid
	default:
		return fmt.Errorf("invalid logging.format: %s (must be text or json)", c.Logging.Format)
	}

	switch c.Logging.Backend {
	case BackendSlog, BackendZap:
		// valid
	default:
		return fmt.Errorf("invalid logging.backend: %s (must be slog or zap)", c.Logging.Backend)
	}

	return nil
}

// Description returns the report heading for a status bucket
func (c *Config) Description(status changeset.Status) string {
	d := c.Report.Descriptions
	switch status {
	case changeset.StatusCreated:
		return d.Created
	case changeset.StatusUpdated:
		return d.Updated
	case changeset.StatusDeleted:
		return d.Deleted
	case changeset.StatusMoved:
		return d.Moved
	case changeset.StatusLostAndFound:
		return d.LostAndFound
	default:
		return string(status)
	}
}
