package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Empty(t, cfg.OutputDir)
	assert.Equal(t, "TableStyleMedium9", cfg.Review.TableStyle)
	assert.True(t, cfg.Review.RowStripes)
	assert.False(t, cfg.Review.ColumnStripes)
	assert.Equal(t, int64(15<<20), cfg.Upload.MaxBytes)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen = ":9090"
output_dir = "/tmp/reviews"

[review]
table_style = "TableStyleLight1"
row_stripes = false

[upload]
max_bytes = 1048576
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "/tmp/reviews", cfg.OutputDir)
	assert.Equal(t, "TableStyleLight1", cfg.Review.TableStyle)
	assert.False(t, cfg.Review.RowStripes)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Listen, cfg.Listen)
}

func TestLoadResolvesOutputDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	// No config file and no output_dir in the file both resolve to the
	// working directory.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.OutputDir)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("listen = \":9090\"\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.OutputDir)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("listen = ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
