package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/layermap/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize layermap configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure LayerMap and writes the config file (default .layermap.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
