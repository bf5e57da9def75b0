package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kakusei/vncards/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const narrativeJSON = `[
  {"name": "Neon Harbour", "card_type": "setting", "genre": "cyberpunk", "effect": "Draw one", "flavor_text": "Rain.", "price": 10},
  {"name": "The Double", "card_type": "plot twist", "genre": "noir", "effect": "Swap", "flavor_text": "", "price": 45},
  {"name": "Blackout", "card_type": "conflict", "genre": "thriller", "effect": "Discard", "flavor_text": "", "price": 30},
  {"name": "Old Temple", "card_type": "setting", "genre": "myth", "effect": "", "flavor_text": "", "price": 31}
]`

const characterTOML = `
[[cards]]
name = "Aiko"
description = "A courier who never sleeps"
price = 20

[[cards]]
name = "Ren"
description = "Retired detective"
price = 60
`

const psychosisJSON = `[{"name": "Echoes", "description": "Voices repeat your last words"}]`

// writeAssets lays out a minimal assets directory and returns its path
func writeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		filepath.Join(NarrativeDir, "cards.json"): narrativeJSON,
		filepath.Join(CharacterDir, "cards.toml"): characterTOML,
		filepath.Join(PsychosisDir, "cards.json"): psychosisJSON,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestBuildPokerDeck(t *testing.T) {
	deck := BuildPokerDeck()
	require.Len(t, deck, 52)

	type key struct {
		rank card.Rank
		suit card.Suit
	}
	seen := make(map[key]bool)
	for _, c := range deck {
		rank, ok := c.Rank()
		require.True(t, ok)
		suit, ok := c.Suit()
		require.True(t, ok)
		assert.GreaterOrEqual(t, rank, card.MinRank)
		assert.LessOrEqual(t, rank, card.MaxRank)

		k := key{rank, suit}
		assert.False(t, seen[k], "duplicate %s", c.ID())
		seen[k] = true
	}
	assert.Len(t, seen, 52)
}

func TestBuildPokerDeckOrder(t *testing.T) {
	deck := BuildPokerDeck()

	assert.Equal(t, card.New(2, card.Hearts), deck[0])
	assert.Equal(t, card.New(10, card.Hearts), deck[8])
	assert.Equal(t, card.New(card.Ace, card.Hearts), deck[12])
	assert.Equal(t, card.New(2, card.Spades), deck[13])
	assert.Equal(t, card.New(2, card.Clubs), deck[26])
	assert.Equal(t, card.New(card.Ace, card.Diamonds), deck[51])

	assert.Equal(t, "poker-cards/Hearts_10.png", deck[8].Filename)
	assert.Equal(t, "poker-cards/Spades_J.png", deck[22].Filename)

	assert.Equal(t, deck, BuildPokerDeck())
}

func TestLoadCatalog(t *testing.T) {
	dir := writeAssets(t)

	catalog, err := LoadCatalog(dir)
	require.NoError(t, err)
	assert.Len(t, catalog.Narrative, 4)
	assert.Len(t, catalog.Character, 2)
	assert.Len(t, catalog.Psychosis, 1)
	assert.Equal(t, "Ren", catalog.Character[1].Name)
	assert.Equal(t, uint16(45), catalog.Narrative[1].Price)
}

func TestLoadCatalogMissingFiles(t *testing.T) {
	catalog, err := LoadCatalog(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, catalog.GameDeck())
}

func TestLoadCatalogMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, NarrativeDir, "cards.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"name": `), 0644))

	_, err := LoadCatalog(dir)
	assert.Error(t, err)
}

func TestGameDeck(t *testing.T) {
	catalog, err := LoadCatalog(writeAssets(t))
	require.NoError(t, err)

	deck := catalog.GameDeck()
	require.Len(t, deck, 7)

	ids := make([]string, len(deck))
	for i, c := range deck {
		ids[i] = c.ID()
	}
	assert.Equal(t, []string{
		"narrative.1", "narrative.2", "narrative.3", "narrative.4",
		"character.1", "character.2",
		"psychosis.1",
	}, ids)

	assert.Equal(t, "narrative-cards/card-2.png", deck[1].Filename)
	assert.Equal(t, "character-cards/card-1.png", deck[4].Filename)
	assert.Equal(t, "psychosis-cards/card-1.png", deck[6].Filename)

	name, _ := deck[5].Name()
	assert.Equal(t, "Ren", name)
}

func TestFilters(t *testing.T) {
	catalog, err := LoadCatalog(writeAssets(t))
	require.NoError(t, err)
	game := catalog.GameDeck()
	before := append([]card.Card(nil), game...)

	names := func(cards []card.Card) []string {
		out := make([]string, 0, len(cards))
		for _, c := range cards {
			out = append(out, c.DisplayName())
		}
		return out
	}

	assert.Equal(t, []string{"Neon Harbour", "Blackout", "Aiko", "Echoes"}, names(InitialNarrativeCards(game)))
	assert.Equal(t, []string{"Neon Harbour", "Old Temple"}, names(SettingDeck(game)))
	assert.Equal(t, []string{"The Double"}, names(PlotTwistDeck(game)))
	assert.Equal(t, []string{"Blackout"}, names(ConflictDeck(game)))
	assert.Len(t, NarrativeCards(game), 4)
	assert.Equal(t, []string{"Echoes"}, names(FilterByCategory(game, card.Psychosis)))
	assert.Equal(t, []string{"Aiko", "Echoes"}, names(FilterByCardType(FilterByPriceAtMost(game, 20)[1:], "")))

	assert.Equal(t, before, game)
}

func TestFilterPokerCardsHaveNoPrice(t *testing.T) {
	poker := BuildPokerDeck()
	assert.Len(t, FilterByPriceAtMost(poker, 0), 52)
	assert.Empty(t, SettingDeck(poker))
	assert.Empty(t, Filter(poker, func(card.Card) bool { return false }))
}

func TestLibrary(t *testing.T) {
	lib, err := LoadLibrary(writeAssets(t))
	require.NoError(t, err)

	c, err := lib.GetCard("poker.spades.queen")
	require.NoError(t, err)
	assert.Equal(t, card.New(card.Queen, card.Spades), c)

	c, err = lib.GetCard("poker.hearts.10")
	require.NoError(t, err)
	assert.Equal(t, card.New(10, card.Hearts), c)

	c, err = lib.GetCard("character.2")
	require.NoError(t, err)
	assert.Equal(t, card.Character, c.Category())

	for _, id := range []string{"poker", "poker.hearts", "joker.1", "narrative.one", "narrative.1.2"} {
		_, err := lib.GetCard(id)
		assert.ErrorContains(t, err, "invalid card ID format", id)
	}

	for _, id := range []string{"poker.hearts.1", "narrative.9", "psychosis.2"} {
		_, err := lib.GetCard(id)
		assert.ErrorContains(t, err, "card not found", id)
	}
}

func TestLibraryDeck(t *testing.T) {
	lib, err := LoadLibrary(writeAssets(t))
	require.NoError(t, err)

	d, err := lib.Deck("poker")
	require.NoError(t, err)
	assert.Len(t, d, 52)

	d, err = lib.Deck("game")
	require.NoError(t, err)
	assert.Len(t, d, 7)

	d, err = lib.Deck("character")
	require.NoError(t, err)
	assert.Len(t, d, 2)

	_, err = lib.Deck("joker")
	assert.Error(t, err)
}
