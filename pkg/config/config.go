// Package config provides config structure for the htxn command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slices"
)

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	wireEncodings = []string{WireEncodingHex, WireEncodingBase64}
)

const (
	WireEncodingHex    = "hex"
	WireEncodingBase64 = "base64"

	defaultLogLevel     = "info"
	defaultWireEncoding = WireEncodingHex
)

type Config struct {
	Logger *LoggerConfig `json:"logger"`
	Output *OutputConfig `json:"output"`
}

type LoggerConfig struct {
	Level string `json:"level"`
}

type OutputConfig struct {
	WireEncoding string `json:"wireEncoding"`
	Indent       *bool  `json:"indent"`
}

// Load reads JSON config from the path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return c, nil
}

// Default returns config with all the default values.
func Default() *Config {
	c := &Config{}
	c.InsertDefault()
	return c
}

func (c *Config) InsertDefault() {
	if c.Logger == nil {
		c.Logger = &LoggerConfig{}
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.WireEncoding == "" {
		c.Output.WireEncoding = defaultWireEncoding
	}
	if c.Output.Indent == nil {
		indent := false
		c.Output.Indent = &indent
	}
}

// Merge overwrites c with the values set in config.
func (c *Config) Merge(config *Config) {
	if config == nil {
		return
	}
	if config.Logger != nil && config.Logger.Level != "" {
		if c.Logger == nil {
			c.Logger = &LoggerConfig{}
		}
		c.Logger.Level = config.Logger.Level
	}
	if config.Output != nil {
		if c.Output == nil {
			c.Output = &OutputConfig{}
		}
		if config.Output.WireEncoding != "" {
			c.Output.WireEncoding = config.Output.WireEncoding
		}
		if config.Output.Indent != nil {
			indent := *config.Output.Indent
			c.Output.Indent = &indent
		}
	}
}

func (c *Config) Validate() error {
	if c.Logger == nil || c.Output == nil {
		return errors.New("config is not initialized")
	}
	if !slices.Contains(logLevels, c.Logger.Level) {
		return fmt.Errorf("logger level must be one of %v but received %s", logLevels, c.Logger.Level)
	}
	if !slices.Contains(wireEncodings, c.Output.WireEncoding) {
		return fmt.Errorf("output wireEncoding must be one of %v but received %s", wireEncodings, c.Output.WireEncoding)
	}
	return nil
}
