package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/qr"
)

// detectAssetsDir returns the first conventional static directory found in
// the working directory.
func detectAssetsDir() string {
	for _, dir := range []string{"public", "static", "assets"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return DefaultConfig().Assets.Dir
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to layermap! Let's configure your deployment.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Public URL for the QR code.
	urlPrompt := promptui.Prompt{
		Label:    "Public URL (encoded in the QR code)",
		Default:  cfg.PublicURL,
		Validate: qr.Validate,
	}
	cfg.PublicURL, err = urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("public url: %w", err)
	}

	// 3. Starting section.
	ids := catalog.IDs()
	items := make([]string, len(ids))
	for i, id := range ids {
		items[i] = id.String()
	}
	sectionPrompt := promptui.Select{
		Label: "Section shown to new visitors",
		Items: items,
	}
	_, cfg.DefaultSection, err = sectionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default section: %w", err)
	}

	// 4. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Assets directory (logo and illustrations)",
		Default: detectAssetsDir(),
	}
	cfg.Assets.Dir, err = assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	// 5. Extra asset patterns.
	includePrompt := promptui.Prompt{
		Label:   "Extra asset patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if extra := splitAndTrim(includeStr); len(extra) > 0 {
		cfg.Assets.Include = append(append([]string(nil), DefaultAssetInclude...), extra...)
	}

	// 6. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console - human readable",
			"json    - structured, for log collectors",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = []string{"console", "json"}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
