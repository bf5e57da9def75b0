// Package hand scores a set of played cards against the poker combinations.
//
// Evaluation is pure: it never mutates its input and keeps no state between
// calls, so it can be called from any goroutine.
package hand

import (
	"errors"
	"slices"
	"sort"

	"github.com/kakusei/vncards/internal/card"
)

// ErrEmptyHand is returned when a hand without cards is evaluated.
var ErrEmptyHand = errors.New("hand: no cards to evaluate")

// Result is the best combination found in a hand and its score.
type Result struct {
	Combination Combination
	Score       uint32
}

// royalRanks is the only rank sequence that makes a royal flush once sorted
var royalRanks = []uint32{10, 11, 12, 13, 14}

// wheelRanks is the ace-low straight A-2-3-4-5 once sorted
var wheelRanks = []uint32{2, 3, 4, 5, 14}

// Evaluate returns the best combination in cards and its score.
//
// Cards without a rank (non-poker cards) count as rank 0 and cards without a
// suit never complete a flush: a mixed hand scores lower, it does not fail.
// Straight, flush and their variants need exactly five cards.
func Evaluate(cards []card.Card) (Result, error) {
	if len(cards) == 0 {
		return Result{}, ErrEmptyHand
	}

	sorted := slices.Clone(cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rankOf(sorted[i]) < rankOf(sorted[j])
	})

	values := make([]uint32, len(sorted))
	for i, c := range sorted {
		values[i] = rankOf(c)
	}
	counts := countRanks(values)

	flush := isFlush(sorted)
	if flush && slices.Equal(values, royalRanks) {
		return Result{RoyalFlush, sum(values)}, nil
	}
	if flush && isStraight(values) {
		return Result{StraightFlush, sum(values)}, nil
	}

	if rank, ok := counts.highest(4); ok {
		return Result{FourOfAKind, rank}, nil
	}

	if score, ok := fullHouse(counts); ok {
		return Result{FullHouse, score}, nil
	}

	if flush {
		return Result{Flush, values[len(values)-1]}, nil
	}

	if isStraight(values) {
		return Result{Straight, values[len(values)-1]}, nil
	}

	if rank, ok := counts.highest(3); ok {
		return Result{ThreeOfAKind, rank}, nil
	}

	if pairs := counts.ranksWith(2); len(pairs) == 2 {
		return Result{TwoPair, pairs[0] + pairs[1]}, nil
	}

	if rank, ok := counts.highest(2); ok {
		return Result{OnePair, rank}, nil
	}

	return Result{HighCard, values[len(values)-1]}, nil
}

// rankOf returns the card rank, 0 when the card has none
func rankOf(c card.Card) uint32 {
	r, _ := c.Rank()
	return uint32(r)
}

func sum(values []uint32) uint32 {
	var total uint32
	for _, v := range values {
		total += v
	}
	return total
}

// isFlush reports five cards sharing one suit
func isFlush(cards []card.Card) bool {
	if len(cards) != 5 {
		return false
	}
	first, ok := cards[0].Suit()
	if !ok {
		return false
	}
	for _, c := range cards[1:] {
		if s, ok := c.Suit(); !ok || s != first {
			return false
		}
	}
	return true
}

// isStraight expects values sorted ascending
func isStraight(values []uint32) bool {
	if len(values) != 5 {
		return false
	}
	if slices.Equal(values, wheelRanks) {
		return true
	}
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

func fullHouse(counts rankCounts) (uint32, bool) {
	triple, ok := counts.highest(3)
	if !ok {
		return 0, false
	}
	pair, ok := counts.highest(2)
	if !ok {
		return 0, false
	}
	return triple + pair, true
}

// rankCounts maps a rank to the number of cards holding it
type rankCounts map[uint32]int

func countRanks(values []uint32) rankCounts {
	counts := make(rankCounts, len(values))
	for _, v := range values {
		counts[v]++
	}
	return counts
}

// ranksWith returns the ranks seen exactly n times, highest first
func (rc rankCounts) ranksWith(n int) []uint32 {
	var ranks []uint32
	for rank, count := range rc {
		if count == n {
			ranks = append(ranks, rank)
		}
	}
	slices.Sort(ranks)
	slices.Reverse(ranks)
	return ranks
}

// highest returns the highest rank seen exactly n times
func (rc rankCounts) highest(n int) (uint32, bool) {
	ranks := rc.ranksWith(n)
	if len(ranks) == 0 {
		return 0, false
	}
	return ranks[0], true
}
