package card

import (
	"fmt"
	"strings"

	"github.com/arcanaland/planeswalker/internal/mana"
)

// NoStat marks a spell without power and toughness (not a creature)
const NoStat = -1

// TypeInstant is the spell type reported by IsInstant
const TypeInstant = "Instant"

// SpellCard is any non-land card: it has a cost, a type line and
// optionally power and toughness
type SpellCard struct {
	base
	cost      mana.Cost
	kind      string
	subtypes  []string
	power     int
	toughness int
}

// SpellOption configures a SpellCard at construction
type SpellOption func(*SpellCard)

// WithType sets the spell type, e.g. "Instant" or "Creature"
func WithType(t string) SpellOption {
	return func(s *SpellCard) { s.kind = t }
}

// WithSubtypes sets the initial subtypes
func WithSubtypes(subtypes ...string) SpellOption {
	return func(s *SpellCard) { s.subtypes = append([]string(nil), subtypes...) }
}

// WithStats sets power and toughness
func WithStats(power, toughness int) SpellOption {
	return func(s *SpellCard) {
		s.power = power
		s.toughness = toughness
	}
}

// WithSpellColor sets the card color
func WithSpellColor(c mana.Color) SpellOption {
	return func(s *SpellCard) { s.color = c }
}

// NewSpellCard creates a colorless, untyped spell without stats unless
// options say otherwise. The cost is copied.
func NewSpellCard(name string, cost mana.Cost, instructions string, opts ...SpellOption) *SpellCard {
	s := &SpellCard{
		base: base{
			name:         name,
			instructions: instructions,
			color:        mana.Colorless,
		},
		cost:      cost.Clone(),
		power:     NoStat,
		toughness: NoStat,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SpellCard) Cost() mana.Cost { return s.cost.Clone() }
func (s *SpellCard) Type() string    { return s.kind }
func (s *SpellCard) Power() int      { return s.power }
func (s *SpellCard) Toughness() int  { return s.toughness }

// Subtypes returns a copy of the subtypes in insertion order
func (s *SpellCard) Subtypes() []string {
	return append([]string(nil), s.subtypes...)
}

// AddSubtype appends a subtype. Duplicates are kept.
func (s *SpellCard) AddSubtype(subtype string) {
	s.subtypes = append(s.subtypes, subtype)
}

// RemoveSubtype removes the first matching subtype, if any
func (s *SpellCard) RemoveSubtype(subtype string) {
	for i, st := range s.subtypes {
		if st == subtype {
			s.subtypes = append(s.subtypes[:i], s.subtypes[i+1:]...)
			return
		}
	}
}

// IsInstant reports whether the type is exactly "Instant" (case-sensitive)
func (s *SpellCard) IsInstant() bool {
	return s.kind == TypeInstant
}

// IsCreature reports whether the spell has power and toughness
func (s *SpellCard) IsCreature() bool {
	return s.power != NoStat
}

func (s *SpellCard) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SpellCard: %s\n", s.name)
	fmt.Fprintf(&sb, "Cost: %s\n", s.cost)
	fmt.Fprintf(&sb, "Instructions: %s\n", s.instructions)
	fmt.Fprintf(&sb, "Color: %s\n", s.color)
	if line := s.TypeLine(); line != "" {
		fmt.Fprintf(&sb, "Type: %s\n", line)
	}
	if s.IsCreature() {
		fmt.Fprintf(&sb, "Power: %d, Toughness: %d\n", s.power, s.toughness)
	}
	return sb.String()
}

// TypeLine renders "Type - sub1 sub2", or "" for an untyped spell
func (s *SpellCard) TypeLine() string {
	if s.kind == "" {
		return ""
	}
	if len(s.subtypes) == 0 {
		return s.kind
	}
	return s.kind + " - " + strings.Join(s.subtypes, " ")
}

func (s *SpellCard) String() string { return s.name }
