// Package config loads the bridge configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the toggles and ambient settings the translation layer needs.
type Config struct {
	// AddNonBedrockItems controls whether Java-only items get a synthesized
	// Bedrock component item (currently the furnace minecart).
	AddNonBedrockItems bool `yaml:"add-non-bedrock-items"`

	// CommandSuggestions controls whether translated command definitions are
	// sent to the client. When false an empty command list is sent instead,
	// which keeps the client from falling back to its built-in /help.
	CommandSuggestions bool `yaml:"command-suggestions"`

	LogLevel string `yaml:"log-level"`

	// StatusAddress is the listen address of the ping/status HTTP surface.
	// Empty disables it.
	StatusAddress string `yaml:"status-address"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		AddNonBedrockItems: true,
		CommandSuggestions: true,
		LogLevel:           "info",
	}
}

// Load reads the YAML file at path, applies environment overrides, and
// returns the result. A missing file yields the defaults; a malformed file
// is an error.
func Load(path string) (*Config, error) {
	// A .env alongside the process is optional.
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := boolEnv("GEYSER_ADD_NON_BEDROCK_ITEMS"); ok {
		c.AddNonBedrockItems = v
	}
	if v, ok := boolEnv("GEYSER_COMMAND_SUGGESTIONS"); ok {
		c.CommandSuggestions = v
	}
	if v := os.Getenv("GEYSER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GEYSER_STATUS_ADDRESS"); v != "" {
		c.StatusAddress = v
	}
}

func boolEnv(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
