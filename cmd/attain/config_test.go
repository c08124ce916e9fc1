package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attain.yaml")

	writeDefaultConfig(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "default config file was not written")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultConfig(), cfg, "written config must round-trip to the defaults")
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.Punctuation)
	assert.Equal(t, 1, cfg.Sentences)
	assert.Positive(t, cfg.MaxSteps)
	assert.NotEmpty(t, cfg.DatabasePath)
}
