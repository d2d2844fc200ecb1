// Package config resolves the indexer's run configuration: block budget,
// input/output directories, and verbosity. Configuration comes from an
// optional on-disk file (KDL, or TOML as a fallback format) merged with
// command-line overrides, which always win.
package config

import (
	"fmt"
	"strings"
)

// Unit is a block-size unit as named in the indexer's external interface.
type Unit string

const (
	UnitKilo Unit = "K"
	UnitMega Unit = "M"
	UnitGiga Unit = "G"
)

// Bytes returns the number of bytes one unit of Unit represents.
func (u Unit) Bytes() (int64, error) {
	switch Unit(strings.ToUpper(string(u))) {
	case UnitKilo:
		return 1024, nil
	case UnitMega:
		return 1024 * 1024, nil
	case UnitGiga:
		return 1024 * 1024 * 1024, nil
	default:
		return 0, fmt.Errorf("unknown block size unit %q, expected one of K, M, G", u)
	}
}

// Config is the fully-resolved indexer configuration.
type Config struct {
	BlockSizeValue int64
	BlockSizeUnit  Unit
	InputDir       string
	OutputDir      string
	Verbose        bool

	// Exclude holds doublestar glob patterns matched against each
	// candidate document's basename; matching documents are skipped
	// during enumeration. Empty by default: the core spec enumerates
	// every file in InputDir.
	Exclude []string
}

// BlockBudget returns the effective block-size budget in bytes:
// BlockSizeValue * BlockSizeUnit.Bytes().
func (c *Config) BlockBudget() (int64, error) {
	if c.BlockSizeValue <= 0 {
		return 0, fmt.Errorf("block size value must be positive, got %d", c.BlockSizeValue)
	}
	unitBytes, err := c.BlockSizeUnit.Bytes()
	if err != nil {
		return 0, err
	}
	return c.BlockSizeValue * unitBytes, nil
}

// Default returns the built-in configuration used when no config file is
// present and no CLI flags override it.
func Default() *Config {
	return &Config{
		BlockSizeValue: 1,
		BlockSizeUnit:  UnitMega,
		InputDir:       ".",
		OutputDir:      "./index-output",
		Verbose:        false,
		Exclude:        nil,
	}
}

// Load resolves configuration starting from Default(), overlaying an
// on-disk config file at path if one exists (.bsbi.kdl is tried first,
// .bsbi.toml as a fallback), and returns the result. A missing file is not
// an error; CLI overrides are applied afterward by the caller via Apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	fileCfg, err := LoadKDL(path)
	if err != nil {
		return nil, err
	}
	if fileCfg == nil {
		fileCfg, err = LoadTOML(path)
		if err != nil {
			return nil, err
		}
	}
	if fileCfg != nil {
		cfg = mergeConfigs(cfg, fileCfg)
	}

	return cfg, nil
}

// Overrides holds CLI-flag-sourced values; a zero value for a field means
// "not specified on the command line, keep whatever Load resolved".
type Overrides struct {
	BlockSizeValue int64
	BlockSizeUnit  string
	InputDir       string
	OutputDir      string
	Verbose        bool
	VerboseSet     bool
}

// Apply overlays non-zero CLI overrides onto cfg, in place.
func (c *Config) Apply(o Overrides) {
	if o.BlockSizeValue > 0 {
		c.BlockSizeValue = o.BlockSizeValue
	}
	if o.BlockSizeUnit != "" {
		c.BlockSizeUnit = Unit(strings.ToUpper(o.BlockSizeUnit))
	}
	if o.InputDir != "" {
		c.InputDir = o.InputDir
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.VerboseSet {
		c.Verbose = o.Verbose
	}
}

// mergeConfigs overlays project (file-sourced) settings onto base
// (defaults), the same base-then-override shape used throughout this
// family of tools: every field project sets explicitly wins, exclusions
// accumulate rather than replace.
func mergeConfigs(base, project *Config) *Config {
	merged := *base

	if project.BlockSizeValue > 0 {
		merged.BlockSizeValue = project.BlockSizeValue
	}
	if project.BlockSizeUnit != "" {
		merged.BlockSizeUnit = project.BlockSizeUnit
	}
	if project.InputDir != "" {
		merged.InputDir = project.InputDir
	}
	if project.OutputDir != "" {
		merged.OutputDir = project.OutputDir
	}
	merged.Verbose = merged.Verbose || project.Verbose

	if len(project.Exclude) > 0 {
		seen := make(map[string]bool, len(base.Exclude)+len(project.Exclude))
		combined := make([]string, 0, len(base.Exclude)+len(project.Exclude))
		for _, p := range base.Exclude {
			if !seen[p] {
				seen[p] = true
				combined = append(combined, p)
			}
		}
		for _, p := range project.Exclude {
			if !seen[p] {
				seen[p] = true
				combined = append(combined, p)
			}
		}
		merged.Exclude = combined
	}

	return &merged
}
