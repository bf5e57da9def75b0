package hand

// Combination is the poker category assigned to a hand.
// Values are ordered: a greater Combination beats a lesser one.
type Combination uint8

const (
	HighCard Combination = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Combinations lists every combination from strongest to weakest
var Combinations = []Combination{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// String returns the display name of the combination
func (c Combination) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Compare returns -1 if c ranks below other, 1 if above and 0 if equal.
func (c Combination) Compare(other Combination) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}
