package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kakusei/vncards/internal/card"
)

// Catalog directories inside the assets directory
const (
	NarrativeDir = "narrative-cards"
	CharacterDir = "character-cards"
	PsychosisDir = "psychosis-cards"
	PokerDir     = "poker-cards"
)

// NarrativeEntry is one narrative card as authored in narrative-cards/cards.json
type NarrativeEntry struct {
	Name       string `json:"name" toml:"name"`
	CardType   string `json:"card_type" toml:"card_type"`
	Genre      string `json:"genre" toml:"genre"`
	Effect     string `json:"effect" toml:"effect"`
	FlavorText string `json:"flavor_text" toml:"flavor_text"`
	Price      uint16 `json:"price" toml:"price"`
}

// CharacterEntry is one character card
type CharacterEntry struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
	Price       uint16 `json:"price" toml:"price"`
}

// PsychosisEntry is one psychosis card
type PsychosisEntry struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
}

// Catalog is the raw content of the three card catalogs
type Catalog struct {
	Narrative []NarrativeEntry
	Character []CharacterEntry
	Psychosis []PsychosisEntry
}

// LoadCatalog reads the card catalogs of an assets directory. A catalog
// without a cards.json or cards.toml file is left empty.
func LoadCatalog(assetsDir string) (*Catalog, error) {
	var c Catalog

	if err := loadEntries(filepath.Join(assetsDir, NarrativeDir), &c.Narrative); err != nil {
		return nil, err
	}
	if err := loadEntries(filepath.Join(assetsDir, CharacterDir), &c.Character); err != nil {
		return nil, err
	}
	if err := loadEntries(filepath.Join(assetsDir, PsychosisDir), &c.Psychosis); err != nil {
		return nil, err
	}

	return &c, nil
}

// CatalogFile returns the catalog file found in dir, or "" when there is none.
// cards.json wins over cards.toml.
func CatalogFile(dir string) string {
	for _, name := range []string{"cards.json", "cards.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DecodeCatalogFile decodes a JSON array or a TOML file of [[cards]] tables into entries
func DecodeCatalogFile[T any](path string, entries *[]T) error {
	if filepath.Ext(path) == ".toml" {
		var doc struct {
			Cards []T `toml:"cards"`
		}
		if _, err := toml.DecodeFile(path, &doc); err != nil {
			return fmt.Errorf("error parsing %s: %w", path, err)
		}
		*entries = doc.Cards
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, entries); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	return nil
}

func loadEntries[T any](dir string, entries *[]T) error {
	path := CatalogFile(dir)
	if path == "" {
		return nil
	}
	return DecodeCatalogFile(path, entries)
}

// GameDeck builds the game deck: narrative cards, then character cards, then
// psychosis cards, each numbered from 1 in catalog order.
func (c *Catalog) GameDeck() []card.Card {
	deck := make([]card.Card, 0, len(c.Narrative)+len(c.Character)+len(c.Psychosis))

	for i, e := range c.Narrative {
		deck = append(deck, card.Card{
			Filename: faceFilename(NarrativeDir, i+1),
			Metadata: card.NarrativeMeta{
				Index:      i + 1,
				CardType:   e.CardType,
				Genre:      e.Genre,
				Name:       e.Name,
				Effect:     e.Effect,
				FlavorText: e.FlavorText,
				Price:      e.Price,
			},
		})
	}

	for i, e := range c.Character {
		deck = append(deck, card.Card{
			Filename: faceFilename(CharacterDir, i+1),
			Metadata: card.CharacterMeta{
				Index:       i + 1,
				Name:        e.Name,
				Description: e.Description,
				Price:       e.Price,
			},
		})
	}

	for i, e := range c.Psychosis {
		deck = append(deck, card.Card{
			Filename: faceFilename(PsychosisDir, i+1),
			Metadata: card.PsychosisMeta{
				Index:       i + 1,
				Name:        e.Name,
				Description: e.Description,
			},
		})
	}

	return deck
}

func faceFilename(dir string, index int) string {
	return fmt.Sprintf("%s/card-%d.png", dir, index)
}
