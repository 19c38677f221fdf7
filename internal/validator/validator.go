package validator

import (
	"errors"
	"fmt"

	"github.com/arcanaland/planeswalker/internal/deck"
	"github.com/arcanaland/planeswalker/internal/format"
	"github.com/arcanaland/planeswalker/internal/game"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	deck   *deck.Deck
	format *format.Format
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks the deck directory. The returned error is set only when
// the deck cannot be read at all; problems with its contents end up in the
// results.
func (v *Validator) Validate() (ValidationResults, error) {
	d, err := deck.LoadDeck(v.DeckPath)
	if err != nil {
		return v.Results, err
	}
	v.deck = d

	v.validateMetadata()
	v.validateLibrary()
	entriesOK := v.validateEntries()
	v.loadFormat()

	if entriesOK && v.format != nil {
		v.validateLegality()
	}

	return v.Results, nil
}

func (v *Validator) errorf(msg string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(msg, args...))
}

func (v *Validator) warnf(msg string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(msg, args...))
}

// validateMetadata checks the required [deck] fields
func (v *Validator) validateMetadata() {
	if v.deck.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	}
	if v.deck.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}
	if v.deck.Format == "" {
		v.errorf("deck.format is required in deck.toml")
	}
}

// validateLibrary flags card definitions that the engine accepts but that
// are probably mistakes
func (v *Validator) validateLibrary() {
	for _, name := range v.deck.Library.Names() {
		if name == "" {
			v.warnf("card library has a card with an empty name")
		}
	}
	for _, name := range v.deck.Library.Duplicates() {
		v.warnf("card %q is defined more than once; the last definition wins", name)
	}

	used := make(map[string]bool, len(v.deck.Entries))
	for _, e := range v.deck.Entries {
		if e.Count > 0 {
			used[e.Name] = true
		}
	}
	for _, name := range v.deck.Library.Names() {
		if !used[name] {
			v.warnf("card %q is in the library but not in the decklist", name)
		}
	}
}

// validateEntries checks the decklist against the library. It returns false
// when the deck cannot be built.
func (v *Validator) validateEntries() bool {
	ok := true
	for i, e := range v.deck.Entries {
		if _, err := v.deck.Library.Get(e.Name); err != nil {
			v.errorf("entries[%d]: %v", i, err)
			ok = false
		}
		switch {
		case e.Count < 0:
			v.errorf("entries[%d]: count for %q must not be negative", i, e.Name)
		case e.Count == 0:
			v.warnf("entries[%d]: %q has a count of 0", i, e.Name)
		}
	}
	return ok
}

func (v *Validator) loadFormat() {
	if v.deck.Format == "" {
		return
	}
	f, err := v.deck.LoadFormat()
	if err != nil {
		v.errorf("%v", err)
		return
	}
	v.format = f
}

// validateLegality builds the deck against its format and reports every
// card the engine refuses
func (v *Validator) validateLegality() {
	g, rejections, err := v.deck.Build(v.format)
	if err != nil {
		v.errorf("%v", err)
		return
	}

	for _, r := range rejections {
		if errors.Is(r.Err, game.ErrCopyLimitExceeded) && v.format.IsBanned(r.Entry.Name) {
			v.errorf("%q is banned in %s (%d copies)", r.Entry.Name, v.formatName(), r.Refused())
			continue
		}
		v.errorf("%s", r)
	}

	if g.Len() < game.MaxDeckSize {
		v.warnf("deck has %d cards; a full deck has %d", g.Len(), game.MaxDeckSize)
	}
}

func (v *Validator) formatName() string {
	if v.format.Name != "" {
		return v.format.Name
	}
	return v.deck.Format
}
