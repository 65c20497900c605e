// Package vectors loads shared test fixtures from YAML files.
package vectors

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DepositVector is one deposit conversion fixture.
type DepositVector struct {
	Name   string `yaml:"name"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Amount string `yaml:"amount"`
	Data   string `yaml:"data"`
}

// LoadDepositVectors reads the deposit fixtures from the given file.
func LoadDepositVectors(path string) ([]DepositVector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var vectors []DepositVector
	if err := yaml.Unmarshal(raw, &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}
