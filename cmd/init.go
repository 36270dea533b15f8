package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akaram/folio/internal/config"
	"github.com/akaram/folio/internal/portfolio"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up folio interactively",
	Long:  `Runs an interactive wizard that writes .folio.yml and, if the data file does not exist yet, a starter data.json to fill in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}

		if _, statErr := os.Stat(cfg.DataSource); os.IsNotExist(statErr) {
			doc := portfolio.StarterDocument()
			data, err := doc.Marshal()
			if err != nil {
				return fmt.Errorf("building starter data: %w", err)
			}
			if err := os.WriteFile(cfg.DataSource, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", cfg.DataSource, err)
			}
			fmt.Printf("Starter data written to %s. Edit it, then run `folio serve`.\n", cfg.DataSource)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
