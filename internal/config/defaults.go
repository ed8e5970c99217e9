package config

import (
	"time"

	"github.com/ziadkadry99/layermap/internal/qr"
	"github.com/ziadkadry99/layermap/internal/shell"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".layermap.yml"

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: LAYERMAP_SERVER__PORT sets server.port.
const EnvPrefix = "LAYERMAP_"

// DefaultAssetInclude are the file patterns served from the assets dir.
var DefaultAssetInclude = []string{
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.gif",
	"**/*.svg",
	"**/*.webp",
	"**/*.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		PublicURL:      qr.DefaultURL,
		DefaultSection: string(shell.DefaultSectionID),
		Assets: AssetsConfig{
			Dir:     "public",
			Include: append([]string(nil), DefaultAssetInclude...),
		},
		Session: SessionConfig{
			Lifetime:   24 * time.Hour,
			CookieName: "layermap_session",
		},
		Export: ExportConfig{
			OutputDir: "site",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
