package player

import (
	"testing"

	"github.com/arcanaland/planeswalker/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SameNameDifferentSeats(t *testing.T) {
	table := NewTable()
	first := table.Join("Alice")
	second := table.Join("Alice")
	require.NotEqual(t, first.ID, second.ID)

	got, ok := table.Get(second.ID)
	require.True(t, ok)
	assert.Same(t, second, got)

	_, ok = table.Get("no-such-id")
	assert.False(t, ok)

	players := table.Players()
	require.Len(t, players, 2)
	assert.Same(t, first, players[0])
	assert.Same(t, second, players[1])
}

func TestTable_DealRoundRobin(t *testing.T) {
	table := NewTable()
	alice := table.Join("Alice")
	bob := table.Join("Bob")

	forest := card.NewLandCard("Forest", "", card.BasicLand)
	island := card.NewLandCard("Island", "", card.BasicLand)
	swamp := card.NewLandCard("Swamp", "", card.BasicLand)
	table.Deal(forest, island, swamp)

	assert.Equal(t, []card.Card{forest, swamp}, alice.Hand())
	assert.Equal(t, []card.Card{island}, bob.Hand())
}

func TestTable_DealWithNoPlayers(t *testing.T) {
	table := NewTable()
	table.Deal(card.NewLandCard("Forest", "", card.BasicLand))
	assert.Empty(t, table.Players())
}

func TestTable_Discard(t *testing.T) {
	table := NewTable()
	alice := table.Join("Alice")
	bob := table.Join("Alice")

	forest := card.NewLandCard("Forest", "", card.BasicLand)
	island := card.NewLandCard("Island", "", card.BasicLand)
	table.Deal(forest, island)

	id, ok := table.Discard(island)
	require.True(t, ok)
	assert.Equal(t, bob.ID, id)
	assert.Zero(t, bob.HandSize())
	assert.Equal(t, 1, alice.HandSize())

	_, ok = table.Discard(island)
	assert.False(t, ok)
}
