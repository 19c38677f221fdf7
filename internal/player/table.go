package player

import (
	"github.com/arcanaland/planeswalker/internal/card"
)

// Table seats players by ID, so players sharing a display name stay apart
type Table struct {
	seats map[string]*Player
	order []string
}

func NewTable() *Table {
	return &Table{seats: make(map[string]*Player)}
}

// Join seats a new player and returns it
func (t *Table) Join(name string) *Player {
	p := NewPlayer(name)
	t.seats[p.ID] = p
	t.order = append(t.order, p.ID)
	return p
}

// Get returns the player seated under id
func (t *Table) Get(id string) (*Player, bool) {
	p, ok := t.seats[id]
	return p, ok
}

// Players returns the seated players in the order they joined
func (t *Table) Players() []*Player {
	out := make([]*Player, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.seats[id])
	}
	return out
}

// Deal hands cards out one at a time, going round the table in join order
func (t *Table) Deal(cards ...card.Card) {
	if len(t.order) == 0 {
		return
	}
	for i, c := range cards {
		t.seats[t.order[i%len(t.order)]].AddToHand(c)
	}
}

// Discard removes c from the first hand, in seat order, that holds it and
// returns the ID of that player. ok is false when no hand holds c.
func (t *Table) Discard(c card.Card) (id string, ok bool) {
	for _, id := range t.order {
		if t.seats[id].RemoveFromHand(c) {
			return id, true
		}
	}
	return "", false
}
