package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/planeswalker/internal/card"
	"github.com/arcanaland/planeswalker/internal/config"
	"github.com/arcanaland/planeswalker/internal/deck"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_name]",
	Short: "Display information about a card in a deck's card library",
	Long: `Show displays the details of a card defined in a deck's card library.

You can specify a deck using the --deck flag, which will look for the deck
in your deck library (XDG_DATA_HOME/planeswalker/decks) or as a relative path.
If no deck is specified, the default deck from your config will be used.

Examples:
  planeswalker show "Lightning Bolt"
  planeswalker show --deck burn Mountain
  planeswalker show --deck ./my-deck "Grizzly Bears"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeckFromFlag(cmd)
		if err != nil {
			return err
		}

		c, err := d.GetCard(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		displayCard(c, d)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
}

// loadDeckFromFlag loads the deck named by --deck, or the default deck
func loadDeckFromFlag(cmd *cobra.Command) (*deck.Deck, error) {
	deckFlag, _ := cmd.Flags().GetString("deck")

	deckName := deckFlag
	if deckName == "" {
		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return nil, fmt.Errorf("error getting default deck: %w", err)
		}
		deckName = defaultDeck
	}

	deckPath, err := config.GetDeckPath(deckName)
	if err != nil {
		return nil, err
	}

	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}
	return d, nil
}

// displayCard prints a card with colored labels, wrapping the rules text
// to the terminal width
func displayCard(c card.Card, d *deck.Deck) {
	width := terminalWidth() - 4
	name := manaColor(c.Color()).Add(colorize.Bold).Sprint(c.Name())

	var lines []string
	switch c := c.(type) {
	case *card.SpellCard:
		lines = append(lines, label("Card:  ")+name+"  "+manaSymbols(c.Cost()))
		lines = append(lines, label("Value: ")+strconv.Itoa(c.Cost().Total()))
		if typeLine := c.TypeLine(); typeLine != "" {
			lines = append(lines, label("Type:  ")+typeLine)
		}
		if c.IsCreature() {
			lines = append(lines, label("Stats: ")+fmt.Sprintf("%d/%d", c.Power(), c.Toughness()))
		}
	case *card.LandCard:
		lines = append(lines, label("Card:  ")+name)
		lines = append(lines, label("Type:  ")+c.Kind().String())
	}
	lines = append(lines, label("Color: ")+manaColor(c.Color()).Sprint(c.Color()))
	lines = append(lines, label("Deck:  ")+d.Name)

	if c.Instructions() != "" {
		lines = append(lines, "", label("Instructions:"))
		lines = append(lines, wrapText(c.Instructions(), width)...)
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Println("  " + strings.TrimRight(line, " "))
	}
	fmt.Println()
}
