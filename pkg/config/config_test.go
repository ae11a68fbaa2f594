package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceConfigDefaults(t *testing.T) {
	cfg := NewServiceConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Generation.DefaultRecords)
	assert.Equal(t, 1, cfg.Generation.MinRecords)
	assert.Equal(t, 10000, cfg.Generation.MaxRecords)
	assert.NotEmpty(t, cfg.Storage.OutputDir)
}

func TestClamp(t *testing.T) {
	g := GenerationConfig{MinRecords: 1, MaxRecords: 10000}

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"in range", 500, 500},
		{"below min", 0, 1},
		{"negative", -50, 1},
		{"above max", 999999, 10000},
		{"at min", 1, 1},
		{"at max", 10000, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Clamp(tt.count))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServiceConfig)
		ok     bool
	}{
		{"defaults valid", func(c *ServiceConfig) {}, true},
		{"missing name", func(c *ServiceConfig) { c.Name = "" }, false},
		{"bad port", func(c *ServiceConfig) { c.Server.Port = 0 }, false},
		{"zero upload cap", func(c *ServiceConfig) { c.Server.MaxUploadBytes = 0 }, false},
		{"min below one", func(c *ServiceConfig) { c.Generation.MinRecords = 0 }, false},
		{"max below min", func(c *ServiceConfig) { c.Generation.MaxRecords = 0 }, false},
		{"default out of range", func(c *ServiceConfig) { c.Generation.DefaultRecords = 99999 }, false},
		{"missing output dir", func(c *ServiceConfig) { c.Storage.OutputDir = "" }, false},
		{"bad compression", func(c *ServiceConfig) { c.Storage.Compression = "lz4" }, false},
		{"zstd compression", func(c *ServiceConfig) { c.Storage.Compression = "zstd" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewServiceConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
name: tabsynth-test
server:
  port: 9090
generation:
  default_records: 250
storage:
  output_dir: ${TABSYNTH_TEST_OUT}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("TABSYNTH_TEST_OUT", "/tmp/tabsynth-out")

	cfg := NewServiceConfig()
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, "tabsynth-test", cfg.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 250, cfg.Generation.DefaultRecords)
	assert.Equal(t, "/tmp/tabsynth-out", cfg.Storage.OutputDir,
		"${ENV} placeholders are substituted at load time")
}

func TestLoadMissingFile(t *testing.T) {
	cfg := NewServiceConfig()
	assert.Error(t, Load("/nonexistent/config.yaml", cfg))
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := NewServiceConfig()
	cfg.Name = "saved"
	require.NoError(t, Save(path, cfg))

	loaded := NewServiceConfig()
	require.NoError(t, Load(path, loaded))
	assert.Equal(t, "saved", loaded.Name)
}
