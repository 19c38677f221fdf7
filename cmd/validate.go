package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/planeswalker/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck directory against its format",
	Long: `Validate builds the deck in a deck directory against the format named in
deck.toml and reports every card the format does not allow, every card over
its copy limit and any cards past the 60-card limit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		// Check if path exists
		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck directory not found: %s", deckPath)
		}

		// Create validator and run validation
		v := validator.NewValidator(deckPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("%s Deck '%s' is legal in its format.\n", okMark(), deckPath)
		} else {
			fmt.Printf("%s Deck '%s' has %d validation errors:\n", failMark(), deckPath, len(results.Errors))
			printNumbered(results.Errors)
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			printNumbered(results.Warnings)
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
