package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/lrkit/lr"
)

// Config holds the settings for lrkit.
type Config struct {
	General GeneralConfig `toml:"general"`
	Tables  TablesConfig  `toml:"tables"`
	REPL    REPLConfig    `toml:"repl"`
}

// GeneralConfig holds general settings.
type GeneralConfig struct {
	TraceLevel string `toml:"trace_level"`
}

// TablesConfig holds settings for table construction and export.
type TablesConfig struct {
	Variant  string `toml:"variant"`
	DotFile  string `toml:"dot_file"`
	HTMLFile string `toml:"html_file"`
}

// REPLConfig holds settings for interactive mode.
type REPLConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// Default returns a configuration with default values.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from a TOML file. Settings missing from the file
// are set to their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		tracer().Infof("config %s: unknown keys %v", path, undecoded)
	}
	c.applyDefaults()
	if _, err := c.variant(""); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.General.TraceLevel == "" {
		c.General.TraceLevel = "Error"
	}
	if c.Tables.Variant == "" {
		c.Tables.Variant = "lr1"
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "lrkit> "
	}
}

// variant returns the table variant selected by a flag value, or by the
// configuration if the flag is empty.
func (c *Config) variant(flag string) (lr.Variant, error) {
	if flag != "" {
		return lr.ParseVariant(flag)
	}
	return lr.ParseVariant(c.Tables.Variant)
}
