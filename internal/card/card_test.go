package card

import (
	"testing"

	"github.com/arcanaland/planeswalker/internal/mana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boltCost(t *testing.T) mana.Cost {
	t.Helper()
	var c mana.Cost
	require.NoError(t, c.Add(1, mana.Red))
	return c
}

func TestNewSpellCard_Defaults(t *testing.T) {
	s := NewSpellCard("Ancestral Recall", mana.Cost{}, "Draw three cards.")

	assert.Equal(t, "Ancestral Recall", s.Name())
	assert.Equal(t, "Draw three cards.", s.Instructions())
	assert.Equal(t, mana.Colorless, s.Color())
	assert.Equal(t, "", s.Type())
	assert.Empty(t, s.Subtypes())
	assert.Equal(t, NoStat, s.Power())
	assert.Equal(t, NoStat, s.Toughness())
	assert.False(t, s.IsCreature())
}

func TestNewSpellCard_CopiesCost(t *testing.T) {
	cost := boltCost(t)
	s := NewSpellCard("Lightning Bolt", cost, "Deal 3 damage to any target.")
	require.NoError(t, cost.Add(5, mana.Blue))

	assert.Equal(t, 1, s.Cost().Len())
}

func TestSpellCard_IsInstant(t *testing.T) {
	cases := map[string]bool{
		"Instant":  true,
		"instant":  false,
		"INSTANT":  false,
		"Instant ": false,
		"Creature": false,
		"":         false,
	}
	for typ, want := range cases {
		s := NewSpellCard("x", mana.Cost{}, "", WithType(typ))
		assert.Equal(t, want, s.IsInstant(), "type %q", typ)
	}
}

func TestSpellCard_AddRemoveSubtype(t *testing.T) {
	s := NewSpellCard("Grizzly Bears", mana.Cost{}, "", WithType("Creature"), WithSubtypes("Bear"))

	s.AddSubtype("Spirit")
	s.AddSubtype("Bear")
	assert.Equal(t, []string{"Bear", "Spirit", "Bear"}, s.Subtypes())

	s.RemoveSubtype("Bear")
	assert.Equal(t, []string{"Spirit", "Bear"}, s.Subtypes())
}

func TestSpellCard_RemoveMissingSubtypeIsNoop(t *testing.T) {
	s := NewSpellCard("Grizzly Bears", mana.Cost{}, "", WithSubtypes("Bear"))
	s.RemoveSubtype("Elf")
	s.RemoveSubtype("Elf")
	assert.Equal(t, []string{"Bear"}, s.Subtypes())
}

func TestSpellCard_SubtypesIsACopy(t *testing.T) {
	in := []string{"Bear"}
	s := NewSpellCard("Grizzly Bears", mana.Cost{}, "", WithSubtypes(in...))
	in[0] = "Wolf"
	s.Subtypes()[0] = "Elk"
	assert.Equal(t, []string{"Bear"}, s.Subtypes())
}

func TestSpellCard_Describe(t *testing.T) {
	bolt := NewSpellCard("Lightning Bolt", boltCost(t), "Deal 3 damage to any target.",
		WithType("Instant"), WithSpellColor(mana.Red))
	assert.Equal(t,
		"SpellCard: Lightning Bolt\n"+
			"Cost: {1 Red}\n"+
			"Instructions: Deal 3 damage to any target.\n"+
			"Color: Red\n"+
			"Type: Instant\n",
		bolt.Describe())

	bears := NewSpellCard("Grizzly Bears", mana.Cost{}, "No special abilities.",
		WithType("Creature"), WithSubtypes("Bear", "Spirit"), WithStats(2, 2), WithSpellColor(mana.Green))
	desc := bears.Describe()
	assert.Contains(t, desc, "Type: Creature - Bear Spirit\n")
	assert.Contains(t, desc, "Power: 2, Toughness: 2\n")
}

func TestSpellCard_DescribeUntyped(t *testing.T) {
	s := NewSpellCard("Mystery", mana.Cost{}, "?", WithSubtypes("Ghost"))
	assert.NotContains(t, s.Describe(), "Type:")
	assert.NotContains(t, s.Describe(), "Power:")
}

func TestLandCard_Describe(t *testing.T) {
	forest := NewLandCard("Forest", "Tap: Add G.", BasicLand, WithLandColor(mana.Green))
	assert.Equal(t,
		"LandCard: Forest (Basic Land)\nInstructions: Tap: Add G.\nColor: Green\n",
		forest.Describe())

	wastes := NewLandCard("Strip Mine", "Tap: Add C.", Land)
	assert.Equal(t, mana.Colorless, wastes.Color())
	assert.Contains(t, wastes.Describe(), "(Land)")
}

func TestParseLandKind(t *testing.T) {
	k, err := ParseLandKind("basic")
	require.NoError(t, err)
	assert.Equal(t, BasicLand, k)

	k, err = ParseLandKind("")
	require.NoError(t, err)
	assert.Equal(t, Land, k)

	_, err = ParseLandKind("swampy")
	assert.Error(t, err)
}

// Empty names are not rejected at construction; the validator warns about
// them instead
func TestEmptyNameIsPermitted(t *testing.T) {
	cards := []Card{
		NewSpellCard("", mana.Cost{}, ""),
		NewLandCard("", "", Land),
	}
	for _, c := range cards {
		assert.Equal(t, "", c.Name())
		assert.NotEmpty(t, c.Describe())
	}
}
