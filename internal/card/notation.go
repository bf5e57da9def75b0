package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	redSuit   = color.New(color.FgHiRed)
	blackSuit = color.New(color.FgHiWhite)
)

// Parse reads a poker card in short notation: a rank (2-10, T, J, Q, K, A)
// followed by a suit letter (H, S, C, D) or glyph. Case is ignored.
func Parse(s string) (Card, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Card{}, fmt.Errorf("empty card notation")
	}

	runes := []rune(in)
	suit, err := parseSuit(runes[len(runes)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}

	rank, err := parseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}

	return New(rank, suit), nil
}

// ParseAll parses every notation in order, stopping at the first error
func ParseAll(notations []string) ([]Card, error) {
	cards := make([]Card, 0, len(notations))
	for _, n := range notations {
		c, err := Parse(n)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 'h', 'H', '♥', '♡':
		return Hearts, nil
	case 's', 'S', '♠', '♤':
		return Spades, nil
	case 'c', 'C', '♣', '♧':
		return Clubs, nil
	case 'd', 'D', '♦', '♢':
		return Diamonds, nil
	}
	return NoSuit, fmt.Errorf("unknown suit %q", r)
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	case "T":
		return 10, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < int(MinRank) || n > 10 {
		return 0, fmt.Errorf("unknown rank %q", s)
	}
	return Rank(n), nil
}

// String renders poker cards in short notation with a coloured suit glyph,
// other cards by their canonical ID.
func (c Card) String() string {
	m, ok := c.Metadata.(PokerMeta)
	if !ok {
		return c.ID()
	}

	suit := blackSuit.Sprint(m.Suit.Symbol())
	if m.Suit.Red() {
		suit = redSuit.Sprint(m.Suit.Symbol())
	}
	return m.Rank.Short() + suit
}
