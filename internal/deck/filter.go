package deck

import "github.com/kakusei/vncards/internal/card"

// Narrative card types drawn into the story sub-decks
const (
	TypeSetting   = "setting"
	TypePlotTwist = "plot twist"
	TypeConflict  = "conflict"
)

// InitialPriceLimit is the highest price of a card in the starting narrative deck
const InitialPriceLimit = 30

// Filter returns the cards matching keep, in their original order
func Filter(cards []card.Card, keep func(card.Card) bool) []card.Card {
	out := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByCategory keeps the cards of one category
func FilterByCategory(cards []card.Card, category card.Category) []card.Card {
	return Filter(cards, func(c card.Card) bool {
		return c.Category() == category
	})
}

// FilterByPriceAtMost keeps the cards costing at most limit.
// Cards without a price count as free.
func FilterByPriceAtMost(cards []card.Card, limit uint16) []card.Card {
	return Filter(cards, func(c card.Card) bool {
		price, _ := c.Price()
		return price <= limit
	})
}

// FilterByCardType keeps the cards of a narrative type.
// Cards without a type only match the empty type.
func FilterByCardType(cards []card.Card, cardType string) []card.Card {
	return Filter(cards, func(c card.Card) bool {
		t, _ := c.CardType()
		return t == cardType
	})
}

// NarrativeCards keeps the narrative cards
func NarrativeCards(cards []card.Card) []card.Card {
	return FilterByCategory(cards, card.Narrative)
}

// InitialNarrativeCards keeps the cards affordable at the start of a game
func InitialNarrativeCards(cards []card.Card) []card.Card {
	return FilterByPriceAtMost(cards, InitialPriceLimit)
}

// SettingDeck keeps the setting cards
func SettingDeck(cards []card.Card) []card.Card {
	return FilterByCardType(cards, TypeSetting)
}

// PlotTwistDeck keeps the plot twist cards
func PlotTwistDeck(cards []card.Card) []card.Card {
	return FilterByCardType(cards, TypePlotTwist)
}

// ConflictDeck keeps the conflict cards
func ConflictDeck(cards []card.Card) []card.Card {
	return FilterByCardType(cards, TypeConflict)
}
