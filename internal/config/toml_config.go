package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// tomlConfig is the on-disk shape of a .bsbi.toml config file; it mirrors
// Config's fields as flat keys. Unlike the KDL format, which nests the
// block size under a block_size node, the block size here is given by
// block_size_value and block_size_unit.
type tomlConfig struct {
	BlockSizeValue int64    `toml:"block_size_value"`
	BlockSizeUnit  string   `toml:"block_size_unit"`
	InputDir       string   `toml:"input_dir"`
	OutputDir      string   `toml:"output_dir"`
	Verbose        bool     `toml:"verbose"`
	Exclude        []string `toml:"exclude"`
}

// LoadTOML attempts to load configuration from a .bsbi.toml file at path,
// the alternate config format offered alongside KDL. Returns (nil, nil) if
// no such file exists.
func LoadTOML(path string) (*Config, error) {
	tomlPath := resolveConfigPath(path, ".bsbi.toml")
	if tomlPath == "" {
		return nil, nil
	}

	content, err := os.ReadFile(tomlPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", tomlPath, err)
	}

	var raw tomlConfig
	if err := toml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	return &Config{
		BlockSizeValue: raw.BlockSizeValue,
		BlockSizeUnit:  Unit(strings.ToUpper(raw.BlockSizeUnit)),
		InputDir:       raw.InputDir,
		OutputDir:      raw.OutputDir,
		Verbose:        raw.Verbose,
		Exclude:        raw.Exclude,
	}, nil
}
