package game

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/arcanaland/planeswalker/internal/card"
	"github.com/arcanaland/planeswalker/internal/mana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bolt() *card.SpellCard {
	return card.NewSpellCard("Bolt", mana.Cost{}, "Deal 3 damage to any target.", card.WithType("Instant"))
}

func rejectReason(t *testing.T, err error) *RejectError {
	t.Helper()
	var rej *RejectError
	require.True(t, errors.As(err, &rej), "expected *RejectError, got %v", err)
	return rej
}

func TestAddCard_CopyLimit(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Bolt", 2)

	require.NoError(t, g.AddCard(bolt()))
	require.NoError(t, g.AddCard(bolt()))

	err := g.AddCard(bolt())
	require.ErrorIs(t, err, ErrCopyLimitExceeded)
	assert.Equal(t, 2, rejectReason(t, err).Max)
	assert.Equal(t, "too many copies of Bolt (max 2)", err.Error())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 2, g.Copies("Bolt"))
}

func TestAddCard_NotAllowed(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Forest", 10)

	err := g.AddCard(bolt())
	require.ErrorIs(t, err, ErrNotAllowed)
	assert.Equal(t, "card Bolt not allowed in this format", err.Error())
	assert.Zero(t, g.Len())
}

func TestAddCard_NotAllowedRegardlessOfDeck(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Forest", MaxDeckSize)
	for i := 0; i < 30; i++ {
		require.NoError(t, g.AddCard(card.NewLandCard("Forest", "", card.BasicLand)))
	}

	assert.ErrorIs(t, g.AddCard(bolt()), ErrNotAllowed)
}

func TestAddCard_DeckFull(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Forest", 100)
	g.SetAllowedCopies("Bolt", 4)
	forest := card.NewLandCard("Forest", "Tap: Add G.", card.BasicLand)
	for i := 0; i < MaxDeckSize; i++ {
		require.NoError(t, g.AddCard(forest))
	}

	err := g.AddCard(bolt())
	require.ErrorIs(t, err, ErrDeckFull)
	assert.Equal(t, fmt.Sprintf("deck is full (%d cards)", MaxDeckSize), err.Error())
	assert.ErrorIs(t, g.AddCard(forest), ErrDeckFull)
	assert.Equal(t, MaxDeckSize, g.Len())
}

// A full deck is reported before a missing rule
func TestAddCard_CheckOrder(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Forest", MaxDeckSize)
	forest := card.NewLandCard("Forest", "", card.BasicLand)
	for i := 0; i < MaxDeckSize; i++ {
		require.NoError(t, g.AddCard(forest))
	}

	unknown := card.NewSpellCard("Black Lotus", mana.Cost{}, "")
	assert.ErrorIs(t, g.AddCard(unknown), ErrDeckFull)
}

func TestSetAllowedCopies_ZeroOrNegativeBans(t *testing.T) {
	for _, max := range []int{0, -3} {
		g := NewGame()
		g.SetAllowedCopies("Bolt", max)

		err := g.AddCard(bolt())
		require.ErrorIs(t, err, ErrCopyLimitExceeded, "max %d", max)

		got, ok := g.AllowedCopies("Bolt")
		assert.True(t, ok)
		assert.Equal(t, max, got)
	}
}

func TestSetAllowedCopies_Upserts(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Bolt", 1)
	require.NoError(t, g.AddCard(bolt()))
	require.Error(t, g.AddCard(bolt()))

	g.SetAllowedCopies("Bolt", 4)
	require.NoError(t, g.AddCard(bolt()))
	assert.Equal(t, map[string]int{"Bolt": 4}, g.Rules())
}

func TestAddCard_NameBasedCounting(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Forest", 2)

	require.NoError(t, g.AddCard(card.NewLandCard("Forest", "", card.BasicLand)))
	// a spell sharing the name counts against the same limit
	require.NoError(t, g.AddCard(card.NewSpellCard("Forest", mana.Cost{}, "")))
	assert.ErrorIs(t, g.AddCard(card.NewLandCard("Forest", "", card.BasicLand)), ErrCopyLimitExceeded)
}

func TestDeckSharesReferences(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Grizzly Bears", 4)
	bears := card.NewSpellCard("Grizzly Bears", mana.Cost{}, "", card.WithType("Creature"), card.WithSubtypes("Bear"))
	require.NoError(t, g.AddCard(bears))

	bears.AddSubtype("Spirit")
	assert.Same(t, bears, g.Deck()[0])
	assert.Contains(t, g.Describe(), "Type: Creature - Bear Spirit")
}

func TestDescribe(t *testing.T) {
	g := NewGame()
	assert.Equal(t, "Deck size: 0\n", g.Describe())

	g.SetAllowedCopies("Forest", 10)
	require.NoError(t, g.AddCard(card.NewLandCard("Forest", "Tap: Add G.", card.BasicLand)))
	assert.Equal(t,
		"Deck size: 1\nDeck card 1:\nLandCard: Forest (Basic Land)\nInstructions: Tap: Add G.\nColor: Colorless\n",
		g.Describe())
}

func TestZeroValueGame(t *testing.T) {
	var g Game
	assert.ErrorIs(t, g.AddCard(bolt()), ErrNotAllowed)
	assert.Empty(t, g.Rules())

	g.SetAllowedCopies("Bolt", 1)
	require.NoError(t, g.AddCard(bolt()))
	assert.ErrorIs(t, g.AddCard(bolt()), ErrCopyLimitExceeded)
	assert.Equal(t, 1, g.Len())
}

func TestAddCard_ConcurrentCallersRespectLimit(t *testing.T) {
	g := NewGame()
	g.SetAllowedCopies("Bolt", 4)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.AddCard(bolt())
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, g.Copies("Bolt"))
}
