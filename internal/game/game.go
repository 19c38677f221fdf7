// Package game holds the deck construction engine: a format's copy limits
// and the deck being built against them.
package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arcanaland/planeswalker/internal/card"
)

// MaxDeckSize is the most cards a deck may hold
const MaxDeckSize = 60

// Game validates cards against its format rules and stores the accepted
// ones. The deck keeps references; cards are never copied. The zero value
// is an empty game with no rules.
type Game struct {
	mu    sync.Mutex
	rules map[string]int
	deck  []card.Card
}

func NewGame() *Game {
	return &Game{rules: make(map[string]int)}
}

// SetAllowedCopies sets the copy limit for a card name. Any value is
// accepted; zero or less bans the card.
func (g *Game) SetAllowedCopies(name string, max int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rules == nil {
		g.rules = make(map[string]int)
	}
	g.rules[name] = max
}

// AllowedCopies returns the copy limit for name and whether one is set
func (g *Game) AllowedCopies(name string) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	max, ok := g.rules[name]
	return max, ok
}

// Rules returns a copy of the format rules
func (g *Game) Rules() map[string]int {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]int, len(g.rules))
	for k, v := range g.rules {
		out[k] = v
	}
	return out
}

// AddCard appends c to the deck if the deck has room, the format allows the
// card and the copy limit for its name is not reached, checked in that
// order. On rejection it returns a *RejectError and the deck is unchanged.
func (g *Game) AddCard(c card.Card) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.deck) >= MaxDeckSize {
		return &RejectError{Card: c.Name(), Reason: ErrDeckFull}
	}
	max, ok := g.rules[c.Name()]
	if !ok {
		return &RejectError{Card: c.Name(), Reason: ErrNotAllowed}
	}
	if g.copies(c.Name()) >= max {
		return &RejectError{Card: c.Name(), Reason: ErrCopyLimitExceeded, Max: max}
	}

	g.deck = append(g.deck, c)
	return nil
}

// Copies counts deck entries with the given name
func (g *Game) Copies(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.copies(name)
}

func (g *Game) copies(name string) int {
	n := 0
	for _, c := range g.deck {
		if c.Name() == name {
			n++
		}
	}
	return n
}

// Deck returns a copy of the deck in the order cards were accepted
func (g *Game) Deck() []card.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]card.Card(nil), g.deck...)
}

func (g *Game) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.deck)
}

func (g *Game) Describe() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Deck size: %d\n", len(g.deck))
	for i, c := range g.deck {
		fmt.Fprintf(&sb, "Deck card %d:\n", i+1)
		sb.WriteString(c.Describe())
	}
	return sb.String()
}
