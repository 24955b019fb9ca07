package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete configuration
type Config struct {
	LogLevel string            `hcl:"log_level,optional"`
	LogFile  string            `hcl:"log_file,optional"`
	Play     *PlaySettings     `hcl:"play,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// PlaySettings configures the interactive game
type PlaySettings struct {
	Seed  int64 `hcl:"seed,optional"`
	Color *bool `hcl:"color,optional"`
}

// SimulateSettings configures batch simulation
type SimulateSettings struct {
	Rounds  int   `hcl:"rounds,optional"`
	Workers int   `hcl:"workers,optional"`
	StandOn int   `hcl:"stand_on,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
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

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFile == "" {
		c.LogFile = "blackjack.log"
	}

	if c.Play == nil {
		c.Play = &PlaySettings{}
	}
	if c.Play.Color == nil {
		color := true
		c.Play.Color = &color
	}

	if c.Simulate == nil {
		c.Simulate = &SimulateSettings{}
	}
	if c.Simulate.Rounds == 0 {
		c.Simulate.Rounds = 100000
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = 4
	}
	if c.Simulate.StandOn == 0 {
		c.Simulate.StandOn = 17
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Simulate.Rounds < 1 {
		return fmt.Errorf("invalid simulate rounds: %d", c.Simulate.Rounds)
	}
	if c.Simulate.Workers < 1 {
		return fmt.Errorf("invalid simulate workers: %d", c.Simulate.Workers)
	}
	if c.Simulate.StandOn < 2 || c.Simulate.StandOn > 21 {
		return fmt.Errorf("invalid simulate stand_on: %d (must be 2-21)", c.Simulate.StandOn)
	}
	return nil
}
