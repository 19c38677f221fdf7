package mana

import (
	"fmt"
	"strings"
)

// Color is one of the five colors of mana, or colorless
type Color int

const (
	White Color = iota
	Blue
	Black
	Red
	Green
	Colorless
)

var colorNames = map[Color]string{
	White:     "White",
	Blue:      "Blue",
	Black:     "Black",
	Red:       "Red",
	Green:     "Green",
	Colorless: "Colorless",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Symbol returns the single-letter mana symbol for the color
func (c Color) Symbol() string {
	switch c {
	case White:
		return "W"
	case Blue:
		return "U"
	case Black:
		return "B"
	case Red:
		return "R"
	case Green:
		return "G"
	default:
		return "C"
	}
}

// ParseColor parses a color name or mana symbol. The empty string is Colorless.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Colorless, nil
	}
	for c, name := range colorNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, c.Symbol()) {
			return c, nil
		}
	}
	return Colorless, fmt.Errorf("unknown color: %q", s)
}
