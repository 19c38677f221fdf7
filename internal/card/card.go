// Package card defines the card kinds a deck is built from.
package card

import (
	"github.com/arcanaland/planeswalker/internal/mana"
)

// Card is implemented by SpellCard and LandCard only
type Card interface {
	Name() string
	Instructions() string
	Color() mana.Color
	// Describe renders the card as human-readable text
	Describe() string

	sealed()
}

// base holds the fields every card kind shares
type base struct {
	name         string
	instructions string
	color        mana.Color
}

func (b *base) Name() string         { return b.name }
func (b *base) Instructions() string { return b.instructions }
func (b *base) Color() mana.Color    { return b.color }

func (b *base) sealed() {}
