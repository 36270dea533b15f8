package cmd

import (
	"github.com/spf13/cobra"

	flog "github.com/akaram/folio/internal/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Render a personal portfolio site from a JSON data file",
	Long: `Folio renders a personal portfolio page from a single data.json
document: summary, experience, education, technical skills and key
projects. It can write a self-contained static site or serve it locally
with live reload while you edit the data.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		flog.Init(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
