package config

import "time"

// Config is the top-level layermap configuration, corresponding to
// .layermap.yml.
type Config struct {
	Server         ServerConfig  `yaml:"server" koanf:"server"`
	PublicURL      string        `yaml:"public_url" koanf:"public_url"`
	ImageBase      string        `yaml:"image_base,omitempty" koanf:"image_base"`
	DefaultSection string        `yaml:"default_section" koanf:"default_section"`
	Logo           string        `yaml:"logo" koanf:"logo"`
	Assets         AssetsConfig  `yaml:"assets" koanf:"assets"`
	Session        SessionConfig `yaml:"session" koanf:"session"`
	Export         ExportConfig  `yaml:"export" koanf:"export"`
	Log            LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// AssetsConfig points at the directory holding the logo and illustrations.
type AssetsConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
}

// SessionConfig holds visitor session settings.
type SessionConfig struct {
	Lifetime   time.Duration `yaml:"lifetime" koanf:"lifetime"`
	CookieName string        `yaml:"cookie_name" koanf:"cookie_name"`
}

// ExportConfig holds static export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
