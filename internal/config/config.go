package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/logging"
	"github.com/ziadkadry99/layermap/internal/qr"
)

// LoadDotEnv loads variables from a .env file into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LAYERMAP_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults. The decoder overwrites slices element by
	// element, so list defaults are applied after unmarshalling.
	cfg := DefaultConfig()
	cfg.Assets.Include = nil

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LAYERMAP_SERVER__PORT -> server.port.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if len(cfg.Assets.Include) == 0 {
		cfg.Assets.Include = append([]string(nil), DefaultAssetInclude...)
	}

	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values. All
// problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port))
	}

	if err := qr.Validate(c.PublicURL); err != nil {
		errs = append(errs, fmt.Errorf("public_url: %w", err))
	}

	if c.ImageBase != "" {
		if err := qr.Validate(c.ImageBase); err != nil {
			errs = append(errs, fmt.Errorf("image_base: %w", err))
		}
	}

	if c.DefaultSection != "" {
		if _, ok := catalog.ParseID(c.DefaultSection); !ok {
			errs = append(errs, fmt.Errorf("default_section %q is not a known section", c.DefaultSection))
		}
	}

	for _, p := range c.Assets.Include {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("assets.include: invalid pattern %q", p))
		}
	}

	if c.Session.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("session.lifetime must be positive"))
	}

	if c.Export.OutputDir == "" {
		errs = append(errs, fmt.Errorf("export.output_dir is required"))
	}

	if err := logging.Check(c.Log.Level, c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// InitialSection returns the section a new visitor starts on.
func (c *Config) InitialSection() catalog.SectionID {
	if id, ok := catalog.ParseID(c.DefaultSection); ok {
		return id
	}
	return ""
}

// IllustrationBase returns the absolute URL illustration paths resolve
// against. The public deployment serves them from its root; an exported
// site elsewhere publishes them under assets/.
func (c *Config) IllustrationBase() string {
	switch {
	case c.ImageBase != "":
		return c.ImageBase
	case c.PublicURL == qr.DefaultURL:
		return c.PublicURL
	}
	return strings.TrimSuffix(c.PublicURL, "/") + "/assets/"
}
