package deck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kakusei/vncards/internal/card"
)

// BuildPokerDeck returns the 52 card poker deck in generation order:
// hearts 2 to ace, then spades, clubs and diamonds. It never shuffles.
func BuildPokerDeck() []card.Card {
	deck := make([]card.Card, 0, len(card.Suits)*int(card.MaxRank-card.MinRank+1))
	for _, suit := range card.Suits {
		for rank := card.MinRank; rank <= card.MaxRank; rank++ {
			deck = append(deck, card.New(rank, suit))
		}
	}
	return deck
}

// Library holds every deck the game draws from
type Library struct {
	Path  string      // Assets directory the catalogs were read from
	Poker []card.Card // Poker deck
	Game  []card.Card // Narrative, character and psychosis cards

	catalog *Catalog
}

// LoadLibrary builds the poker deck and loads the card catalogs found in assetsDir
func LoadLibrary(assetsDir string) (*Library, error) {
	catalog, err := LoadCatalog(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("error loading card catalogs: %w", err)
	}

	return &Library{
		Path:    assetsDir,
		Poker:   BuildPokerDeck(),
		Game:    catalog.GameDeck(),
		catalog: catalog,
	}, nil
}

// Catalog returns the catalogs the library was built from
func (l *Library) Catalog() *Catalog {
	return l.catalog
}

// Deck returns the named deck: poker, game, or one of the game card categories
func (l *Library) Deck(name string) ([]card.Card, error) {
	switch name {
	case "", "poker":
		return l.Poker, nil
	case "game":
		return l.Game, nil
	}

	category, err := card.ParseCategory(name)
	if err != nil {
		return nil, fmt.Errorf("unknown deck: %s", name)
	}
	return FilterByCategory(l.Game, category), nil
}

// GetCard gets a card by its canonical ID
func (l *Library) GetCard(cardID string) (card.Card, error) {
	parts := splitCardID(cardID)
	id := strings.Join(parts, ".")
	if len(parts) < 2 {
		return card.Card{}, fmt.Errorf("invalid card ID format: %s", cardID)
	}

	if parts[0] == "poker" && len(parts) == 3 {
		for _, c := range l.Poker {
			if c.ID() == id {
				return c, nil
			}
		}
		return card.Card{}, fmt.Errorf("card not found: %s", cardID)
	}

	category, err := card.ParseCategory(parts[0])
	if err != nil || len(parts) != 2 {
		return card.Card{}, fmt.Errorf("invalid card ID format: %s", cardID)
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return card.Card{}, fmt.Errorf("invalid card ID format: %s", cardID)
	}

	for _, c := range l.Game {
		if c.Category() == category && c.ID() == id {
			return c, nil
		}
	}
	return card.Card{}, fmt.Errorf("card not found: %s", cardID)
}

// splitCardID splits a canonical card ID into parts
func splitCardID(cardID string) []string {
	return strings.Split(strings.ToLower(cardID), ".")
}
