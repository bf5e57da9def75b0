package hand

import (
	"fmt"

	"github.com/kakusei/vncards/internal/card"
	"github.com/paulhankin/poker"
)

// Describe returns the conventional poker reading of a 5 or 7 card hand,
// e.g. "ace-high flush". Unlike Evaluate it only accepts poker cards.
func Describe(cards []card.Card) (string, error) {
	if len(cards) != 5 && len(cards) != 7 {
		return "", fmt.Errorf("describe expects 5 or 7 cards, got %d", len(cards))
	}

	converted := make([]poker.Card, 0, len(cards))
	for i, c := range cards {
		pc, err := toPokerCard(c)
		if err != nil {
			return "", fmt.Errorf("card %d: %w", i, err)
		}
		converted = append(converted, pc)
	}

	return poker.Describe(converted)
}

// toPokerCard maps a card onto the evaluator library's encoding:
// suits club, diamond, heart, spade as 0-3 and ranks 1-13 with the ace as 1.
func toPokerCard(c card.Card) (poker.Card, error) {
	var none poker.Card
	rank, ok := c.Rank()
	if !ok {
		return none, fmt.Errorf("%s is not a poker card", c.ID())
	}
	suit, _ := c.Suit()

	var s uint8
	switch suit {
	case card.Clubs:
		s = 0
	case card.Diamonds:
		s = 1
	case card.Hearts:
		s = 2
	case card.Spades:
		s = 3
	default:
		return none, fmt.Errorf("%s has no suit", c.ID())
	}

	r := uint8(rank)
	if rank == card.Ace {
		r = 1
	}
	return poker.MakeCard(poker.Suit(s), poker.Rank(r))
}
