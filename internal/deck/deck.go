package deck

import (
	"fmt"
	"path/filepath"

	"github.com/arcanaland/planeswalker/internal/card"
	"github.com/arcanaland/planeswalker/internal/config"
	"github.com/arcanaland/planeswalker/internal/format"
	"github.com/arcanaland/planeswalker/internal/game"
	"github.com/arcanaland/planeswalker/internal/library"
)

// Deck represents a deck directory: its metadata, decklist and card library
type Deck struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Format      string
	Tags        []string
	Path        string

	Entries []Entry
	Library *library.Library

	// Raw config data
	config *DeckConfig
}

// Entry is one line of the decklist
type Entry struct {
	Name  string `toml:"name" yaml:"name"`
	Count int    `toml:"count" yaml:"count"`
}

// Rejection records the copies of an entry the engine refused. Copy is the
// first refused copy (1-based); every copy from Copy to Last was refused
// for the same reason.
type Rejection struct {
	Entry Entry
	Copy  int
	Last  int
	Err   error
}

// Refused is the number of copies covered by the rejection
func (r Rejection) Refused() int {
	return r.Last - r.Copy + 1
}

func (r Rejection) String() string {
	if r.Last > r.Copy {
		return fmt.Sprintf("%s (copies %d-%d of %d): %v", r.Entry.Name, r.Copy, r.Last, r.Entry.Count, r.Err)
	}
	return fmt.Sprintf("%s (copy %d of %d): %v", r.Entry.Name, r.Copy, r.Entry.Count, r.Err)
}

// LoadDeck loads a deck from a directory
func LoadDeck(deckPath string) (*Deck, error) {
	deckFile, err := config.FindFile(deckPath, "deck")
	if err != nil {
		return nil, err
	}

	var cfg DeckConfig
	if err := config.DecodeFile(deckFile, &cfg); err != nil {
		return nil, err
	}

	d := &Deck{
		ID:          cfg.Deck.ID,
		Name:        cfg.Deck.Name,
		Version:     cfg.Deck.Version,
		Author:      cfg.Deck.Author,
		Description: cfg.Deck.Description,
		Format:      cfg.Deck.Format,
		Tags:        cfg.Deck.Tags,
		Path:        deckPath,
		Entries:     cfg.Entries,
		config:      &cfg,
	}

	libraryPath, err := d.libraryPath()
	if err != nil {
		return nil, err
	}
	d.Library, err = library.Load(libraryPath)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// libraryPath resolves the card library file: deck.cards if set, otherwise
// cards.toml / cards.yaml next to the deck file
func (d *Deck) libraryPath() (string, error) {
	if d.config.Deck.Cards != "" {
		if filepath.IsAbs(d.config.Deck.Cards) {
			return d.config.Deck.Cards, nil
		}
		return filepath.Join(d.Path, d.config.Deck.Cards), nil
	}
	return config.FindFile(d.Path, "cards")
}

// GetCard gets a card from the deck's library by name
func (d *Deck) GetCard(name string) (card.Card, error) {
	return d.Library.Get(name)
}

// Size is the number of cards the decklist asks for
func (d *Deck) Size() int {
	n := 0
	for _, e := range d.Entries {
		if e.Count > 0 {
			n += e.Count
		}
	}
	return n
}

// LoadFormat resolves and loads the deck's format, looking in the format
// library first and then relative to the deck directory
func (d *Deck) LoadFormat() (*format.Format, error) {
	if d.Format == "" {
		return nil, fmt.Errorf("deck %s has no format", d.Path)
	}
	formatPath, err := config.GetFormatPath(d.Format, d.Path)
	if err != nil {
		return nil, err
	}
	return format.Load(formatPath)
}

// Build offers every entry to a new Game under the rules of f, count times
// each and in decklist order. An entry naming a card missing from the
// library is an error.
//
// Once one copy of an entry is refused the deck does not change again for
// that entry, so the rest of its copies would be refused for the same
// reason. They are folded into a single Rejection and never offered, which
// keeps Build bounded by the number of entries rather than their counts.
func (d *Deck) Build(f *format.Format) (*game.Game, []Rejection, error) {
	g := game.NewGame()
	f.Apply(g)

	var rejections []Rejection
	for _, e := range d.Entries {
		c, err := d.Library.Get(e.Name)
		if err != nil {
			return nil, nil, fmt.Errorf("decklist: %w", err)
		}
		for i := 1; i <= e.Count; i++ {
			if err := g.AddCard(c); err != nil {
				rejections = append(rejections, Rejection{Entry: e, Copy: i, Last: e.Count, Err: err})
				break
			}
		}
	}

	return g, rejections, nil
}

// Deck configuration structures
type DeckConfig struct {
	Deck    DeckSection `toml:"deck" yaml:"deck"`
	Entries []Entry     `toml:"entries" yaml:"entries"`
}

type DeckSection struct {
	ID          string   `toml:"id" yaml:"id"`
	Name        string   `toml:"name" yaml:"name"`
	Version     string   `toml:"version" yaml:"version"`
	Author      string   `toml:"author" yaml:"author"`
	Description string   `toml:"description" yaml:"description"`
	Format      string   `toml:"format" yaml:"format"`
	Cards       string   `toml:"cards" yaml:"cards"`
	Tags        []string `toml:"tags" yaml:"tags"`
}
