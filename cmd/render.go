package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akaram/folio/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the portfolio to a static site",
	Long: `Renders the page shell, populates it from the configured data
source and writes a self-contained static site (index.html, style.css,
script.js, data.json and any configured assets) to the output directory.

A missing or invalid data source is not fatal: the page shell is still
written with its placeholders visible.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("output", "", "override output directory")
	renderCmd.Flags().String("data", "", "override data source (path or URL)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.DataSource = data
	}

	gen := site.NewGenerator(cfg)
	out, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("rendering site: %w", err)
	}

	fmt.Printf("Site rendered: %s\n", out)
	return nil
}
