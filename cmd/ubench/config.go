package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/violenttestpen/ubench/internal/fib"
	"gopkg.in/yaml.v3"
)

var (
	validClocks  = []string{"wall", "cpu", "cycles", "count"}
	validFormats = []string{"basic", "table", "gobench"}
)

// Config describes a run of the sample benchmarks. It can be loaded from a
// YAML file; command-line flags override file values.
type Config struct {
	Iterations int         `yaml:"iterations"`
	Clock      string      `yaml:"clock"`
	Format     string      `yaml:"format"`
	NoColor    *bool       `yaml:"no_color,omitempty"`
	Inputs     *InputRange `yaml:"inputs,omitempty"`
	Members    []string    `yaml:"members,omitempty"`
}

// InputRange is the half-open range of Fibonacci inputs [Start, Stop)
// walked with Step.
type InputRange struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
	Step  int `yaml:"step"`
}

func defaultConfig() *Config {
	noColor := false
	members := make([]string, 0, len(fib.Variants))
	for _, v := range fib.Variants {
		members = append(members, v.Name)
	}
	return &Config{
		Iterations: 20,
		Clock:      "wall",
		Format:     "basic",
		NoColor:    &noColor,
		Inputs:     &InputRange{Start: 0, Stop: 36, Step: 5},
		Members:    members,
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults(d *Config) *Config {
	if c.Iterations == 0 {
		c.Iterations = d.Iterations
	}
	if c.Clock == "" {
		c.Clock = d.Clock
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.NoColor == nil {
		c.NoColor = d.NoColor
	}
	if c.Inputs == nil {
		c.Inputs = d.Inputs
	} else if c.Inputs.Step == 0 && d.Inputs != nil {
		c.Inputs.Step = d.Inputs.Step
	}
	if len(c.Members) == 0 {
		c.Members = d.Members
	}
	return c
}

func (c *Config) validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if !slices.Contains(validClocks, c.Clock) {
		return fmt.Errorf("invalid clock %q: must be one of %v", c.Clock, validClocks)
	}
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, validFormats)
	}

	in := c.Inputs
	if in.Step < 1 {
		return fmt.Errorf("inputs step must be positive, got %d", in.Step)
	}
	if in.Start < 0 || in.Stop > len(fib.Answers) {
		return fmt.Errorf("inputs must lie within [0, %d), got [%d, %d)", len(fib.Answers), in.Start, in.Stop)
	}

	for _, m := range c.Members {
		if _, ok := fib.Lookup(m); !ok {
			return fmt.Errorf("unknown member %q", m)
		}
	}
	return nil
}
