package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/layermap/internal/config"
	"github.com/ziadkadry99/layermap/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "layermap",
	Short: "Interactive map of frontend and backend architecture layers",
	Long: `LayerMap explains the layers of a typical web application: the
frontend Model, View and Controller, and the backend Controller, Service,
Model and Persistence. Browse it in a browser, in the terminal, as a static
site, or from an AI agent over MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level, cfg.Log.Format)
		if err != nil {
			// Fall back so `check` and `init` can still report and repair
			// a broken log section.
			fmt.Fprintf(os.Stderr, "Warning: %v; using default logger\n", err)
			def := config.DefaultConfig().Log
			if l, err = logging.New(def.Level, def.Format); err != nil {
				return err
			}
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
