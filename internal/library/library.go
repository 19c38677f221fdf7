// Package library builds cards from definition files.
package library

import (
	"fmt"

	"github.com/arcanaland/planeswalker/internal/card"
	"github.com/arcanaland/planeswalker/internal/config"
	"github.com/arcanaland/planeswalker/internal/mana"
)

// Library holds one card instance per name
type Library struct {
	Path string

	cards      map[string]card.Card
	order      []string
	duplicates []string
}

// LibraryConfig is the on-disk layout of a card definition file
type LibraryConfig struct {
	Spells []SpellDefinition `toml:"spells" yaml:"spells"`
	Lands  []LandDefinition  `toml:"lands" yaml:"lands"`
}

type SpellDefinition struct {
	Name         string          `toml:"name" yaml:"name"`
	Instructions string          `toml:"instructions" yaml:"instructions"`
	Type         string          `toml:"type" yaml:"type"`
	Subtypes     []string        `toml:"subtypes" yaml:"subtypes"`
	Power        *int            `toml:"power" yaml:"power"`
	Toughness    *int            `toml:"toughness" yaml:"toughness"`
	Color        string          `toml:"color" yaml:"color"`
	Cost         []CostComponent `toml:"cost" yaml:"cost"`
}

type CostComponent struct {
	Amount int    `toml:"amount" yaml:"amount"`
	Color  string `toml:"color" yaml:"color"`
}

type LandDefinition struct {
	Name         string `toml:"name" yaml:"name"`
	Instructions string `toml:"instructions" yaml:"instructions"`
	Kind         string `toml:"kind" yaml:"kind"`
	Color        string `toml:"color" yaml:"color"`
}

// New returns an empty library
func New() *Library {
	return &Library{cards: make(map[string]card.Card)}
}

// Load reads card definitions from a TOML or YAML file. Spells are added
// before lands, each in file order.
func Load(path string) (*Library, error) {
	var cfg LibraryConfig
	if err := config.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error loading card library: %w", err)
	}

	lib := New()
	lib.Path = path

	for i, def := range cfg.Spells {
		c, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("spells[%d] (%s): %w", i, def.Name, err)
		}
		lib.Add(c)
	}
	for i, def := range cfg.Lands {
		c, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("lands[%d] (%s): %w", i, def.Name, err)
		}
		lib.Add(c)
	}

	return lib, nil
}

func (d SpellDefinition) build() (*card.SpellCard, error) {
	color, err := mana.ParseColor(d.Color)
	if err != nil {
		return nil, err
	}

	var cost mana.Cost
	for _, p := range d.Cost {
		pc, err := mana.ParseColor(p.Color)
		if err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
		if err := cost.Add(p.Amount, pc); err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
	}

	opts := []card.SpellOption{
		card.WithType(d.Type),
		card.WithSubtypes(d.Subtypes...),
		card.WithSpellColor(color),
	}
	if d.Power != nil || d.Toughness != nil {
		power, toughness := card.NoStat, card.NoStat
		if d.Power != nil {
			power = *d.Power
		}
		if d.Toughness != nil {
			toughness = *d.Toughness
		}
		opts = append(opts, card.WithStats(power, toughness))
	}

	return card.NewSpellCard(d.Name, cost, d.Instructions, opts...), nil
}

func (d LandDefinition) build() (*card.LandCard, error) {
	color, err := mana.ParseColor(d.Color)
	if err != nil {
		return nil, err
	}
	kind, err := card.ParseLandKind(d.Kind)
	if err != nil {
		return nil, err
	}
	return card.NewLandCard(d.Name, d.Instructions, kind, card.WithLandColor(color)), nil
}

// Add registers c under its name. A card with the same name as an existing
// one replaces it and the name is recorded as a duplicate.
func (l *Library) Add(c card.Card) {
	name := c.Name()
	if _, ok := l.cards[name]; ok {
		l.duplicates = append(l.duplicates, name)
	} else {
		l.order = append(l.order, name)
	}
	l.cards[name] = c
}

// Get returns the card with the given name
func (l *Library) Get(name string) (card.Card, error) {
	c, ok := l.cards[name]
	if !ok {
		return nil, fmt.Errorf("card not found: %s", name)
	}
	return c, nil
}

// Names returns card names in the order they were first defined
func (l *Library) Names() []string {
	return append([]string(nil), l.order...)
}

// Duplicates returns names that were defined more than once
func (l *Library) Duplicates() []string {
	return append([]string(nil), l.duplicates...)
}

func (l *Library) Len() int { return len(l.order) }
