package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/layermap/internal/export"
	"github.com/ziadkadry99/layermap/internal/progress"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write LayerMap as a static site",
	Long:  `Renders every selection state to its own HTML page, plus the QR page, the QR image, the diagram and the allowed assets, so the site can be hosted without a server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cfg.Export.OutputDir
		if exportOutput != "" {
			out = exportOutput
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		assets, err := newAssets(cfg)
		if err != nil {
			return fmt.Errorf("opening assets: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		e := &export.Exporter{
			Renderer:  renderer,
			Assets:    assets,
			PublicURL: cfg.PublicURL,
			OutputDir: out,
			Initial:   cfg.InitialSection(),
			Reporter:  progress.NewReporter(os.Stderr, "Exporting site"),
			Logger:    logger,
		}
		n, err := e.Export(ctx)
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		index, _ := filepath.Abs(filepath.Join(out, "index.html"))
		fmt.Printf("Wrote %d files to %s\n", n, out)
		fmt.Printf("Open %s in a browser to view the site.\n", index)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}
