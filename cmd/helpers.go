package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/config"
	"github.com/ziadkadry99/layermap/internal/detail"
	"github.com/ziadkadry99/layermap/internal/web"
)

// loadConfig returns the validated config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s:\n%w\nRun `layermap init` to create a config file", cfgFile, err)
	}
	return cfg, nil
}

// newRenderer builds the page renderer shared by serve and export.
func newRenderer(c *config.Config) (*web.Renderer, error) {
	return web.NewRenderer(catalog.Default(), detail.NewHighlighter(""), web.RenderOptions{
		PublicURL: c.PublicURL,
		LogoPath:  c.Logo,
	})
}

// newAssets opens the assets directory. A missing directory is not an
// error: pages fall back to the built-in logo and the image placeholder.
func newAssets(c *config.Config) (*web.Assets, error) {
	if _, err := os.Stat(c.Assets.Dir); errors.Is(err, os.ErrNotExist) {
		logger.Warn("assets directory not found, serving without images", zap.String("dir", c.Assets.Dir))
		return nil, nil
	}
	return web.NewAssets(c.Assets.Dir, c.Assets.Include)
}

// openBrowser opens url in the default browser, logging on failure.
func openBrowser(url string) {
	browser.Stdout = os.Stderr
	if err := browser.OpenURL(url); err != nil {
		logger.Warn("could not open browser", zap.String("url", url), zap.Error(err))
	}
}
