package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigOK(t *testing.T) {
	cfg := Default()
	require.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsNonPositiveBlockSize(t *testing.T) {
	cfg := Default()
	cfg.BlockSizeValue = 0
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsUnknownUnit(t *testing.T) {
	cfg := Default()
	cfg.BlockSizeUnit = "X"
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRejectsEmptyDirs(t *testing.T) {
	cfg := Default()
	cfg.InputDir = ""
	assert.Error(t, ValidateConfig(cfg))

	cfg2 := Default()
	cfg2.OutputDir = ""
	assert.Error(t, ValidateConfig(cfg2))
}
