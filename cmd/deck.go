package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/planeswalker/internal/config"
	"github.com/arcanaland/planeswalker/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing decks in your deck library.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath, err := filepath.EvalSymlinks(config.GetDeckLibraryPath())
		if err != nil {
			fmt.Printf("Deck library at %s does not exist.\n", config.GetDeckLibraryPath())
			fmt.Println("Run 'planeswalker deck init' to create it.")
			return
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			fmt.Printf("Error getting default deck: %v\n", err)
			return
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading deck library: %v\n", err)
			return
		}

		if len(entries) == 0 {
			fmt.Println("No decks found in your deck library.")
			fmt.Println("You can add decks by copying them to:", libraryPath)
			return
		}

		for _, entry := range entries {
			// Resolve the symbolic link or regular entry
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				fmt.Printf("Error resolving entry %s: %v\n", entry.Name(), err)
				continue
			}
			if !fileInfo.IsDir() {
				continue
			}

			d, err := deck.LoadDeck(entryPath)
			if err != nil {
				// Not a valid deck, skip
				continue
			}

			fmt.Println(deckListLine(entry.Name(), d, entry.Name() == defaultDeck))
		}
	},
}

// deckListLine renders one deck for deck ls
func deckListLine(dirName string, d *deck.Deck, isDefault bool) string {
	line := fmt.Sprintf("  %s (%s, %d cards)", dirName, d.Name, d.Size())
	if isDefault {
		line = "*" + line[1:]
	}
	if len(d.Tags) > 0 {
		line += " #" + strings.Join(d.Tags, " #")
	}
	if isDefault {
		line += " [DEFAULT]"
	}
	return line
}

// deckBuildCmd builds a deck against its format and prints the result
var deckBuildCmd = &cobra.Command{
	Use:   "build [deck_name]",
	Short: "Build a deck against its format and list the cards it accepted",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if err := cmd.Flags().Set("deck", args[0]); err != nil {
				return err
			}
		}
		d, err := loadDeckFromFlag(cmd)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		if formatName != "" {
			d.Format = formatName
		} else if d.Format == "" {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			d.Format = cfg.DefaultFormat
		}

		f, err := d.LoadFormat()
		if err != nil {
			return err
		}

		g, rejections, err := d.Build(f)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s (%s)\n", label("Deck:"), d.Name, f.Name)
		fmt.Print(g.Describe())

		if len(rejections) > 0 {
			fmt.Printf("\n%s %d cards were rejected:\n", failMark(), len(rejections))
			for i, r := range rejections {
				fmt.Printf("%d. %s\n", i+1, r)
			}
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deckName := args[0]

		// Check if the deck exists
		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Try to load the deck to make sure it's valid
		if _, err := deck.LoadDeck(deckPath); err != nil {
			fmt.Printf("Error: Not a valid deck - %v\n", err)
			return
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			fmt.Printf("Error setting default deck: %v\n", err)
			return
		}

		fmt.Printf("Default deck set to: %s\n", deckName)
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck and format libraries",
	Run: func(cmd *cobra.Command, args []string) {
		for _, dir := range []string{config.GetDeckLibraryPath(), config.GetFormatLibraryPath()} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				fmt.Printf("Error creating library: %v\n", err)
				return
			}
		}

		fmt.Println("Deck library initialized at:", config.GetDeckLibraryPath())
		fmt.Println("Format library initialized at:", config.GetFormatLibraryPath())

		if _, err := config.LoadConfig(); err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckBuildCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckBuildCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	deckBuildCmd.Flags().StringP("format", "f", "", "Build against this format instead of the deck's own")
}
