package cmd

import (
	"github.com/arcanaland/planeswalker/internal/config"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "planeswalker",
	Short: "Tool for building and validating trading card game decks",
	Long: `Planeswalker is a command-line tool for building trading card game decks
and checking them against a format: which cards are allowed, how many
copies of each, and the 60-card limit.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg, err := config.LoadConfig(); err == nil && cfg.NoColor {
			colorize.NoColor = true
		}
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return RootCmd.Execute()
}
