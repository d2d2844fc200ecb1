package config

import (
	"fmt"

	bsbierrors "github.com/standardbeagle/bsbi/internal/errors"
)

// Validator checks a resolved Config for the invariants the driver relies
// on before enumeration begins.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that the block size value is positive, that the block
// size unit is one of K, M, G, and that both directories are non-empty.
// Exclusion patterns are not checked.
func (v *Validator) Validate(cfg *Config) error {
	if err := v.validateBlockSize(cfg); err != nil {
		return bsbierrors.New(bsbierrors.KindIO, "validate config", err)
	}
	if cfg.InputDir == "" {
		return bsbierrors.New(bsbierrors.KindIO, "validate config", fmt.Errorf("input_dir must not be empty"))
	}
	if cfg.OutputDir == "" {
		return bsbierrors.New(bsbierrors.KindIO, "validate config", fmt.Errorf("output_dir must not be empty"))
	}
	return nil
}

func (v *Validator) validateBlockSize(cfg *Config) error {
	if cfg.BlockSizeValue <= 0 {
		return fmt.Errorf("block_size_value must be positive, got %d", cfg.BlockSizeValue)
	}
	if _, err := cfg.BlockSizeUnit.Bytes(); err != nil {
		return err
	}
	return nil
}

// ValidateConfig is a convenience wrapper over Validator.
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
