// internal/config/config.go

// Package config loads run configuration from defaults, an optional YAML
// file, and TARGETNORM_* environment variables, in that order. Explicit
// command-line flags override all of it; the merge happens in internal/app.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TARGETNORM"

// Config carries every tunable that may come from file or environment.
type Config struct {
	Column      string        `mapstructure:"column"`
	IDColumn    string        `mapstructure:"id_column"`
	Delimiter   string        `mapstructure:"delimiter"`
	Encoding    string        `mapstructure:"encoding"`
	Format      string        `mapstructure:"format"`
	JSONColumns string        `mapstructure:"json_columns"`
	Taxon       int           `mapstructure:"taxon"`
	Threads     int           `mapstructure:"threads"`
	LogLevel    string        `mapstructure:"log_level"`
	UniProt     UniProtConfig `mapstructure:"uniprot"`
}

// UniProtConfig tunes the optional validation client.
type UniProtConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("column", "target_name")
	v.SetDefault("id_column", "")
	v.SetDefault("delimiter", "")
	v.SetDefault("encoding", "")
	v.SetDefault("format", "csv")
	v.SetDefault("json_columns", "hints,rules_applied")
	v.SetDefault("taxon", 9606)
	v.SetDefault("threads", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("uniprot.base_url", "https://rest.uniprot.org")
	v.SetDefault("uniprot.timeout", 10*time.Second)
	return v
}

// Load builds the configuration. path may be empty (defaults + env only).
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Taxon <= 0 {
		return fmt.Errorf("config: taxon must be positive, got %d", c.Taxon)
	}
	if c.Threads < 0 {
		return fmt.Errorf("config: threads must be >= 0, got %d", c.Threads)
	}
	return nil
}

// JSONColumnList splits the comma-separated json_columns setting.
func (c *Config) JSONColumnList() []string {
	var out []string
	for _, s := range strings.Split(c.JSONColumns, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
