// Package config loads service configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Review contains presentation settings for generated review workbooks.
type Review struct {
	TableStyle    string `toml:"table_style"`
	RowStripes    bool   `toml:"row_stripes"`
	ColumnStripes bool   `toml:"column_stripes"`
}

// Upload contains limits for uploaded workbooks.
type Upload struct {
	MaxBytes int64 `toml:"max_bytes"`
}

// Config is the top-level service configuration.
type Config struct {
	Listen    string `toml:"listen"`
	OutputDir string `toml:"output_dir"`
	Review    Review `toml:"review"`
	Upload    Upload `toml:"upload"`
}

// Default returns the built-in configuration. OutputDir is left empty
// here; Load resolves it to the process working directory.
func Default() Config {
	return Config{
		Listen: ":8080",
		Review: Review{
			TableStyle: "TableStyleMedium9",
			RowStripes: true,
		},
		Upload: Upload{
			MaxBytes: 15 << 20, // 15MB
		},
	}
}

// Load reads configuration from path, merged over defaults. A missing
// file is not an error; malformed TOML is. An OutputDir left unset
// resolves to the process working directory.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	if cfg.OutputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, fmt.Errorf("resolve working directory: %w", err)
		}
		cfg.OutputDir = wd
	}
	return cfg, nil
}
