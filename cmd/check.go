package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/layermap/internal/catalog"
	"github.com/ziadkadry99/layermap/internal/diagram"
	"github.com/ziadkadry99/layermap/internal/navigation"
)

// checkResult is one line of `layermap check` output.
type checkResult struct {
	name string
	err  error
}

// runChecks validates the catalog, the sidebar, the diagram and the
// loaded configuration.
func runChecks() []checkResult {
	cat := catalog.Default()
	return []checkResult{
		{fmt.Sprintf("catalog (%d sections)", cat.Len()), catalogComplete(cat)},
		{"navigation menu", navigation.Validate(cat)},
		{"layer diagram", diagram.Default().Validate(cat)},
		{"config " + cfgFile, cfg.Validate()},
	}
}

func catalogComplete(cat *catalog.Catalog) error {
	for _, id := range catalog.IDs() {
		if _, ok := cat.Get(id); !ok {
			return fmt.Errorf("section %q is missing", id)
		}
	}
	return nil
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalog, menu, diagram and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := color.New(color.FgGreen).SprintFunc()
		bad := color.New(color.FgRed, color.Bold).SprintFunc()

		failed := 0
		for _, r := range runChecks() {
			if r.err == nil {
				fmt.Printf("%s %s\n", ok("✓"), r.name)
				continue
			}
			failed++
			fmt.Printf("%s %s\n", bad("✗"), r.name)
			fmt.Printf("    %v\n", r.err)
		}
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
