package card

import (
	"fmt"
	"strings"

	"github.com/arcanaland/planeswalker/internal/mana"
)

// LandKind classifies a LandCard
type LandKind int

const (
	Land LandKind = iota
	BasicLand
)

func (k LandKind) String() string {
	if k == BasicLand {
		return "Basic Land"
	}
	return "Land"
}

// ParseLandKind accepts "land", "basic" or "basic land" in any case
func ParseLandKind(s string) (LandKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "land":
		return Land, nil
	case "basic", "basic land", "basicland":
		return BasicLand, nil
	}
	return Land, fmt.Errorf("unknown land kind: %q", s)
}

// LandCard is a land, classified by its LandKind
type LandCard struct {
	base
	kind LandKind
}

// LandOption configures a LandCard at construction
type LandOption func(*LandCard)

// WithLandColor sets the card color
func WithLandColor(c mana.Color) LandOption {
	return func(l *LandCard) { l.color = c }
}

// NewLandCard creates a colorless land unless an option sets the color
func NewLandCard(name, instructions string, kind LandKind, opts ...LandOption) *LandCard {
	l := &LandCard{
		base: base{
			name:         name,
			instructions: instructions,
			color:        mana.Colorless,
		},
		kind: kind,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *LandCard) Kind() LandKind { return l.kind }

func (l *LandCard) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LandCard: %s (%s)\n", l.name, l.kind)
	fmt.Fprintf(&sb, "Instructions: %s\n", l.instructions)
	fmt.Fprintf(&sb, "Color: %s\n", l.color)
	return sb.String()
}

func (l *LandCard) String() string { return l.name }
