package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/detail"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog [id]",
	Short: "Print the section catalog, or one section",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()

		var v any = cat.All()
		if len(args) == 1 {
			panel := detail.Build(cat, catalog.SectionID(args[0]))
			if !panel.Found {
				return fmt.Errorf("%s: %q", detail.NotFoundMessage, args[0])
			}
			v = panel
		}

		switch catalogFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(v)
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", catalogFormat)
		}
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(catalogCmd)
}
