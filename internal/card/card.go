package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four poker suits
type Suit uint8

const (
	NoSuit Suit = iota
	Hearts
	Spades
	Clubs
	Diamonds
)

// Suits lists the suits in deck generation order
var Suits = []Suit{Hearts, Spades, Clubs, Diamonds}

// String returns the suit name as used in asset filenames (e.g. Hearts)
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	default:
		return ""
	}
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank is the numeric value of a poker card, 2-14 with the ace high.
type Rank uint8

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// MinRank and MaxRank bound the ranks of a poker deck
const (
	MinRank Rank = 2
	MaxRank Rank = Ace
)

// Short returns the short notation of the rank (2..10, J, Q, K, A)
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", r)
	}
}

// Name returns the rank as a word, used in canonical IDs and display names
func (r Rank) Name() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	default:
		return fmt.Sprintf("%d", r)
	}
}

// fileToken returns the rank part of a poker face filename
func (r Rank) fileToken() string {
	if r == Ace {
		return "ACE"
	}
	return r.Short()
}

// Category distinguishes poker cards from the narrative subsystem's cards
type Category uint8

const (
	Unknown Category = iota
	Poker
	Narrative
	Character
	Psychosis
)

// String returns the lower-case category name used in canonical IDs
func (c Category) String() string {
	switch c {
	case Poker:
		return "poker"
	case Narrative:
		return "narrative"
	case Character:
		return "character"
	case Psychosis:
		return "psychosis"
	default:
		return "unknown"
	}
}

// ParseCategory is the inverse of Category.String
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "poker":
		return Poker, nil
	case "narrative":
		return Narrative, nil
	case "character":
		return Character, nil
	case "psychosis":
		return Psychosis, nil
	}
	return Unknown, fmt.Errorf("unknown card category: %s", s)
}

// Metadata is the category-specific payload of a card.
type Metadata interface {
	Category() Category
}

// PokerMeta carries the rank and suit of a playing card
type PokerMeta struct {
	Rank Rank
	Suit Suit
}

// NarrativeMeta describes a narrative card bought in the card shop
type NarrativeMeta struct {
	Index      int
	CardType   string
	Genre      string
	Name       string
	Effect     string
	FlavorText string
	Price      uint16
}

// CharacterMeta describes a character card
type CharacterMeta struct {
	Index       int
	Name        string
	Description string
	Price       uint16
}

// PsychosisMeta describes a psychosis card
type PsychosisMeta struct {
	Index       int
	Name        string
	Description string
}

func (PokerMeta) Category() Category     { return Poker }
func (NarrativeMeta) Category() Category { return Narrative }
func (CharacterMeta) Category() Category { return Character }
func (PsychosisMeta) Category() Category { return Psychosis }

// Card represents one card of the game: a face image and its metadata.
//
// Accessors for category-specific fields return ok=false when the card
// belongs to another category.
type Card struct {
	Filename string // Front face asset reference
	Metadata Metadata
}

// New creates a poker card with its canonical face filename
func New(rank Rank, suit Suit) Card {
	return Card{
		Filename: fmt.Sprintf("poker-cards/%s_%s.png", suit, rank.fileToken()),
		Metadata: PokerMeta{Rank: rank, Suit: suit},
	}
}

// Category returns the card category, Unknown for a zero Card
func (c Card) Category() Category {
	if c.Metadata == nil {
		return Unknown
	}
	return c.Metadata.Category()
}

// Rank returns the poker rank of the card
func (c Card) Rank() (Rank, bool) {
	if m, ok := c.Metadata.(PokerMeta); ok {
		return m.Rank, true
	}
	return 0, false
}

// Suit returns the poker suit of the card
func (c Card) Suit() (Suit, bool) {
	if m, ok := c.Metadata.(PokerMeta); ok {
		return m.Suit, true
	}
	return NoSuit, false
}

// CardType returns the narrative card type (setting, plot twist, conflict, ...)
func (c Card) CardType() (string, bool) {
	if m, ok := c.Metadata.(NarrativeMeta); ok {
		return m.CardType, true
	}
	return "", false
}

// Genre returns the narrative card genre
func (c Card) Genre() (string, bool) {
	if m, ok := c.Metadata.(NarrativeMeta); ok {
		return m.Genre, true
	}
	return "", false
}

// Effect returns the narrative card effect text
func (c Card) Effect() (string, bool) {
	if m, ok := c.Metadata.(NarrativeMeta); ok {
		return m.Effect, true
	}
	return "", false
}

// Name returns the name printed on narrative, character and psychosis cards
func (c Card) Name() (string, bool) {
	switch m := c.Metadata.(type) {
	case NarrativeMeta:
		return m.Name, true
	case CharacterMeta:
		return m.Name, true
	case PsychosisMeta:
		return m.Name, true
	}
	return "", false
}

// Description returns the description of character and psychosis cards
func (c Card) Description() (string, bool) {
	switch m := c.Metadata.(type) {
	case CharacterMeta:
		return m.Description, true
	case PsychosisMeta:
		return m.Description, true
	}
	return "", false
}

// Price returns the shop price of narrative and character cards
func (c Card) Price() (uint16, bool) {
	switch m := c.Metadata.(type) {
	case NarrativeMeta:
		return m.Price, true
	case CharacterMeta:
		return m.Price, true
	}
	return 0, false
}

// ID returns the canonical card ID (e.g. poker.hearts.ace, narrative.3)
func (c Card) ID() string {
	switch m := c.Metadata.(type) {
	case PokerMeta:
		return fmt.Sprintf("poker.%s.%s", strings.ToLower(m.Suit.String()), m.Rank.Name())
	case NarrativeMeta:
		return fmt.Sprintf("narrative.%d", m.Index)
	case CharacterMeta:
		return fmt.Sprintf("character.%d", m.Index)
	case PsychosisMeta:
		return fmt.Sprintf("psychosis.%d", m.Index)
	}
	return "unknown"
}

// BackFilename returns the back face asset reference
func (c Card) BackFilename() string {
	if c.Category() == Poker {
		return "poker-cards/Back_1.png"
	}
	return "poker-cards/Back_2.png"
}

// DisplayName returns a human readable name (e.g. "Ace of Hearts")
func (c Card) DisplayName() string {
	if m, ok := c.Metadata.(PokerMeta); ok {
		name := m.Rank.Name()
		return fmt.Sprintf("%s of %s", strings.ToUpper(name[:1])+name[1:], m.Suit)
	}
	if name, ok := c.Name(); ok && name != "" {
		return name
	}
	return c.ID()
}
