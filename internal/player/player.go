// Package player models a participant and the cards in their hand.
package player

import (
	"fmt"
	"strings"

	"github.com/arcanaland/planeswalker/internal/card"
	"github.com/google/uuid"
)

// StartingLife is the life total every player begins with
const StartingLife = 20

// Player holds references to cards; it does not own them, so the same
// card may also sit in a deck
type Player struct {
	ID   string
	Name string
	Life int

	hand []card.Card
}

func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Life: StartingLife,
	}
}

// AddToHand appends c. The same card may be added more than once.
func (p *Player) AddToHand(c card.Card) {
	p.hand = append(p.hand, c)
}

// RemoveFromHand removes the first occurrence of c (by identity) and
// reports whether anything was removed
func (p *Player) RemoveFromHand(c card.Card) bool {
	for i, h := range p.hand {
		if h == c {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return true
		}
	}
	return false
}

// Hand returns a copy of the hand in insertion order
func (p *Player) Hand() []card.Card {
	return append([]card.Card(nil), p.hand...)
}

func (p *Player) HandSize() int { return len(p.hand) }

func (p *Player) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Player: %s, Life: %d, Hand size: %d\n", p.Name, p.Life, len(p.hand))
	for i, c := range p.hand {
		fmt.Fprintf(&sb, "Hand card %d:\n", i+1)
		sb.WriteString(c.Describe())
	}
	return sb.String()
}
