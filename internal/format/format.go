// Package format loads format rule files: which cards a format allows and
// how many copies of each.
package format

import (
	"fmt"
	"sort"

	"github.com/arcanaland/planeswalker/internal/config"
	"github.com/arcanaland/planeswalker/internal/game"
)

// Format is a named set of copy limits
type Format struct {
	Name        string
	Description string
	Path        string

	// Copies maps card name to the most copies allowed in a deck
	Copies map[string]int
	Banned []string
}

// FormatConfig is the on-disk layout of a format file
type FormatConfig struct {
	Format FormatSection  `toml:"format" yaml:"format"`
	Copies map[string]int `toml:"copies" yaml:"copies"`
	Banned []string       `toml:"banned" yaml:"banned"`
}

type FormatSection struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
}

// Load reads a format from a TOML or YAML file
func Load(path string) (*Format, error) {
	var cfg FormatConfig
	if err := config.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error loading format: %w", err)
	}

	f := &Format{
		Name:        cfg.Format.Name,
		Description: cfg.Format.Description,
		Path:        path,
		Copies:      cfg.Copies,
		Banned:      cfg.Banned,
	}
	if f.Copies == nil {
		f.Copies = make(map[string]int)
	}
	return f, nil
}

// Apply installs the format's rules on g. Banned cards get a limit of 0,
// overriding any entry in Copies.
func (f *Format) Apply(g *game.Game) {
	for _, name := range f.CardNames() {
		g.SetAllowedCopies(name, f.Copies[name])
	}
	for _, name := range f.Banned {
		g.SetAllowedCopies(name, 0)
	}
}

// IsBanned reports whether name is on the banned list
func (f *Format) IsBanned(name string) bool {
	for _, b := range f.Banned {
		if b == name {
			return true
		}
	}
	return false
}

// CardNames returns the names with a copy limit, sorted
func (f *Format) CardNames() []string {
	names := make([]string, 0, len(f.Copies))
	for name := range f.Copies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
