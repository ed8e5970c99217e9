package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/tui"
)

var tuiStyle string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse LayerMap in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return tui.Run(catalog.Default(), tui.Options{
			Initial: cfg.InitialSection(),
			Style:   tuiStyle,
		})
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiStyle, "style", "", "glamour style for the detail pane (dark, light, notty or a path)")
	rootCmd.AddCommand(tuiCmd)
}
