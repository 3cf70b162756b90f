// Package config loads the table configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is read when no --config flag is given.
const DefaultFile = "blackjack.hcl"

// Config represents the complete configuration
type Config struct {
	Game     GameSettings     `hcl:"game,block"`
	UI       UISettings       `hcl:"ui,block"`
	Simulate SimulateSettings `hcl:"simulate,block"`
}

// GameSettings contains engine settings
type GameSettings struct {
	Seed int64 `hcl:"seed,optional"` // 0 derives a seed from the clock
}

// UISettings contains user interface settings
type UISettings struct {
	Theme    string `hcl:"theme,optional"`
	Mouse    *bool  `hcl:"mouse,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// SimulateSettings contains headless simulation settings
type SimulateSettings struct {
	Rounds  int `hcl:"rounds,optional"`
	Workers int `hcl:"workers,optional"`
	StandOn int `hcl:"stand_on,optional"`
}

// Default returns the default configuration
func Default() *Config {
	mouse := true
	return &Config{
		UI: UISettings{
			Theme:    "felt",
			Mouse:    &mouse,
			LogLevel: "info",
			LogFile:  "blackjack.log",
		},
		Simulate: SimulateSettings{
			Rounds:  10000,
			Workers: 4,
			StandOn: 17,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Every block is optional; decode into a struct of pointers first so
	// absent blocks keep their defaults.
	var raw struct {
		Game     *GameSettings     `hcl:"game,block"`
		UI       *UISettings       `hcl:"ui,block"`
		Simulate *SimulateSettings `hcl:"simulate,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Config{}
	if raw.Game != nil {
		config.Game = *raw.Game
	}
	if raw.UI != nil {
		config.UI = *raw.UI
	}
	if raw.Simulate != nil {
		config.Simulate = *raw.Simulate
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.Mouse == nil {
		c.UI.Mouse = defaults.UI.Mouse
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}

	if c.Simulate.Rounds == 0 {
		c.Simulate.Rounds = defaults.Simulate.Rounds
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = defaults.Simulate.Workers
	}
	if c.Simulate.StandOn == 0 {
		c.Simulate.StandOn = defaults.Simulate.StandOn
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"felt":  true,
		"dark":  true,
		"light": true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.Simulate.Rounds <= 0 {
		return fmt.Errorf("simulate rounds must be positive")
	}
	if c.Simulate.Workers <= 0 {
		return fmt.Errorf("simulate workers must be positive")
	}
	if c.Simulate.StandOn < 12 || c.Simulate.StandOn > 21 {
		return fmt.Errorf("simulate stand_on must be between 12 and 21, got %d", c.Simulate.StandOn)
	}

	return nil
}

// MouseEnabled reports whether mouse buttons are active in the table view
func (c *Config) MouseEnabled() bool {
	return c.UI.Mouse == nil || *c.UI.Mouse
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
