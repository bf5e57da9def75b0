package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerIsDeterministic(t *testing.T) {
	a, b := newDealer(42), newDealer(42)
	for i := 0; i < 12; i++ {
		assert.Equal(t, a.deal(handSize), b.deal(handSize))
	}
}

func TestDealerNeverRepeatsWithinADeck(t *testing.T) {
	d := newDealer(7)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		for _, c := range d.deal(handSize) {
			require.False(t, seen[c.ID()], "dealt %s twice", c.ID())
			seen[c.ID()] = true
		}
	}
	assert.Len(t, seen, 50)

	// two cards left, so the next hand comes from a fresh deck
	assert.Len(t, d.deal(handSize), handSize)
	assert.Len(t, d.cards, 52-handSize)
}

func TestFormatHand(t *testing.T) {
	hand := newDealer(1).deal(3)
	assert.Len(t, strings.Fields(formatHand(hand)), 3)
}
