package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/de-tools/fdd-atlas/pkg/services/analyzer"
	"github.com/de-tools/fdd-atlas/pkg/services/rules"
)

type Config struct {
	Analyzer analyzer.Config `mapstructure:"analyzer"`
	Rules    rules.Config    `mapstructure:"rules"`
	Server   Server          `mapstructure:"server"`
	Storage  Storage         `mapstructure:"storage"`
}

type Server struct {
	Addr string `mapstructure:"addr"`
}

type Storage struct {
	// sqlite database holding report run history
	Path string `mapstructure:"path"`
}

func Default() Config {
	return Config{
		Analyzer: analyzer.DefaultConfig(),
		Rules:    rules.DefaultConfig(),
		Server:   Server{Addr: ":8080"},
		Storage:  Storage{Path: "fdd-atlas.db"},
	}
}

func (c Config) Validate() error {
	if err := c.Analyzer.Validate(); err != nil {
		return err
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server addr must not be empty")
	}
	return nil
}

// LoadConfig reads a config file over the defaults. Unknown keys are
// rejected so typos fail at startup instead of silently using defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
