// Package session keeps the state of one solo game: the hands played, the
// combinations they made and the running score.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kakusei/vncards/internal/card"
	"github.com/kakusei/vncards/internal/hand"
	"github.com/sirupsen/logrus"
)

// ErrSessionEnded is returned when a hand is played after the last allowed hand.
var ErrSessionEnded = errors.New("session: game is over")

// Rules configures a session.
type Rules struct {
	// MaxHands is the number of hands in a game; zero or less means no limit.
	MaxHands int
}

// Play records one played hand.
type Play struct {
	Cards  []card.Card
	Result hand.Result
}

// Session is the state of one game. It is owned by a single turn loop and
// must not be shared between goroutines.
type Session struct {
	ID           uuid.UUID
	Rules        Rules
	Score        uint64
	Combinations []hand.Combination
	Plays        []Play
	Ended        bool

	log *logrus.Entry
}

// New starts a session. A nil logger discards log output.
func New(rules Rules, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}

	id := uuid.New()
	return &Session{
		ID:    id,
		Rules: rules,
		log:   logger.WithField("session", id.String()),
	}
}

// HandsPlayed returns the number of hands scored so far
func (s *Session) HandsPlayed() int {
	return len(s.Plays)
}

// HandsLeft returns the hands still allowed, -1 when unlimited
func (s *Session) HandsLeft() int {
	if s.Rules.MaxHands <= 0 {
		return -1
	}
	return s.Rules.MaxHands - len(s.Plays)
}

// PlayHand scores the cards on the table and folds the result into the session.
// A failed evaluation leaves the session untouched.
func (s *Session) PlayHand(cards []card.Card) (hand.Result, error) {
	if s.Ended {
		return hand.Result{}, ErrSessionEnded
	}

	result, err := hand.Evaluate(cards)
	if err != nil {
		return hand.Result{}, fmt.Errorf("play hand %d: %w", len(s.Plays)+1, err)
	}

	played := make([]card.Card, len(cards))
	copy(played, cards)

	s.Plays = append(s.Plays, Play{Cards: played, Result: result})
	s.Combinations = append(s.Combinations, result.Combination)
	s.Score += uint64(result.Score)

	if s.Rules.MaxHands > 0 && len(s.Plays) >= s.Rules.MaxHands {
		s.Ended = true
	}

	s.log.WithFields(logrus.Fields{
		"hand":        len(s.Plays),
		"cards":       len(cards),
		"combination": result.Combination.String(),
		"score":       result.Score,
		"total":       s.Score,
		"ended":       s.Ended,
	}).Info("hand played")

	return result, nil
}

// Summary aggregates a session
type Summary struct {
	Hands  int
	Score  uint64
	Counts map[hand.Combination]int
	Best   hand.Combination
}

// Summary tallies the combinations made so far. Best is HighCard when no
// hand was played.
func (s *Session) Summary() Summary {
	sum := Summary{
		Hands:  len(s.Plays),
		Score:  s.Score,
		Counts: make(map[hand.Combination]int),
	}
	for _, c := range s.Combinations {
		sum.Counts[c]++
		if c.Compare(sum.Best) > 0 {
			sum.Best = c
		}
	}
	return sum
}
