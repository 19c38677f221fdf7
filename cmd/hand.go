package cmd

import (
	"fmt"

	"github.com/arcanaland/planeswalker/internal/card"
	"github.com/arcanaland/planeswalker/internal/player"
	"github.com/spf13/cobra"
)

var handCmd = &cobra.Command{
	Use:   "hand [card_name...]",
	Short: "Deal cards from a deck's card library into players' hands",
	Long: `Hand seats one player per --player flag and deals the named cards from a
deck's card library round the table, one card each in turn. Cards listed
with --discard are then removed again, one copy per flag, from the first
hand holding them.

Examples:
  planeswalker hand --deck burn "Lightning Bolt" Mountain Mountain
  planeswalker hand --player Alice --player Bob Mountain Mountain --discard Mountain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeckFromFlag(cmd)
		if err != nil {
			return err
		}

		playerNames, _ := cmd.Flags().GetStringArray("player")
		discards, _ := cmd.Flags().GetStringArray("discard")

		table := player.NewTable()
		for _, name := range playerNames {
			table.Join(name)
		}

		cards := make([]card.Card, 0, len(args))
		for _, name := range args {
			c, err := d.GetCard(name)
			if err != nil {
				return fmt.Errorf("error getting card: %w", err)
			}
			cards = append(cards, c)
		}
		table.Deal(cards...)

		for _, name := range discards {
			c, err := d.GetCard(name)
			if err != nil {
				return fmt.Errorf("error getting card: %w", err)
			}
			id, ok := table.Discard(c)
			if !ok {
				fmt.Printf("%s %s is not in any hand\n", failMark(), name)
				continue
			}
			p, _ := table.Get(id)
			fmt.Printf("%s %s discarded %s\n", okMark(), seatLabel(p), name)
		}

		for i, p := range table.Players() {
			fmt.Printf("%s %d %s\n", label("Seat"), i+1, seatLabel(p))
			fmt.Print(p.Describe())
		}
		return nil
	},
}

// seatLabel renders a player as "Name [id]"
func seatLabel(p *player.Player) string {
	return fmt.Sprintf("%s [%s]", p.Name, p.ID)
}

func init() {
	RootCmd.AddCommand(handCmd)

	handCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	handCmd.Flags().StringArrayP("player", "p", []string{"Player"}, "Seat a player at the table (repeatable)")
	handCmd.Flags().StringArray("discard", nil, "Remove one copy of a card from the first hand holding it (repeatable)")
}
