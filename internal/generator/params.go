package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params configures one generation run. Values from a YAML parameter file
// override the defaults; explicitly set CLI flags override both.
type Params struct {
	Users        int    `yaml:"users"`
	Products     int    `yaml:"products"`
	Logs         int    `yaml:"logs"`
	Transactions int    `yaml:"transactions"`
	Days         int    `yaml:"days"`
	Seed         int64  `yaml:"seed"`
	Output       string `yaml:"output"`
}

// DefaultParams mirrors the CLI flag defaults.
func DefaultParams() Params {
	return Params{
		Users:        1000,
		Products:     200,
		Logs:         10000,
		Transactions: 5000,
		Days:         30,
		Seed:         42,
		Output:       "data/raw",
	}
}

// LoadParams reads a YAML parameter file on top of the defaults. Fields
// absent from the file keep their default values.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()

	file, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params file: %w", err)
	}

	if err := yaml.Unmarshal(file, &params); err != nil {
		return params, fmt.Errorf("parse params file: %w", err)
	}

	return params, nil
}
