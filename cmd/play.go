package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/kakusei/vncards/internal/card"
	"github.com/kakusei/vncards/internal/config"
	"github.com/kakusei/vncards/internal/deck"
	"github.com/kakusei/vncards/internal/hand"
	"github.com/kakusei/vncards/internal/session"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// handSize is the number of cards dealt per hand
const handSize = 5

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a solo session of dealt poker hands",
	Long: `Play shuffles the poker deck, deals 5 card hands into a session and
prints every hand with its combination and score. The deck is reshuffled
whenever it runs out. Pass --seed to replay the same deal.

Examples:
  vncards play
  vncards play --hands 10 --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		hands := cfg.MaxHands
		if cmd.Flags().Changed("hands") {
			hands, _ = cmd.Flags().GetInt("hands")
		}
		if hands <= 0 {
			return fmt.Errorf("hands must be positive, got %d", hands)
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}

		logger := newLogger(cfg)
		s := session.New(session.Rules{MaxHands: hands}, logger)
		logger.WithField("seed", seed).Debug("dealing")

		d := newDealer(seed)
		rows := pterm.TableData{{"#", "Hand", "Combination", "Score", "Total"}}
		for !s.Ended {
			result, err := s.PlayHand(d.deal(handSize))
			if err != nil {
				return err
			}
			last := s.Plays[len(s.Plays)-1]
			rows = append(rows, []string{
				fmt.Sprint(s.HandsPlayed()),
				formatHand(last.Cards),
				result.Combination.String(),
				fmt.Sprint(result.Score),
				fmt.Sprint(s.Score),
			})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		printSummary(s.Summary(), seed)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("hands", "n", 0, "Number of hands to play (defaults to the configured max_hands)")
	playCmd.Flags().Uint64P("seed", "s", 0, "Shuffle seed")
}

// dealer deals from a shuffled poker deck, reshuffling a fresh one when it runs dry
type dealer struct {
	rng   *rand.Rand
	cards []card.Card
}

func newDealer(seed uint64) *dealer {
	return &dealer{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (d *dealer) deal(n int) []card.Card {
	if len(d.cards) < n {
		d.cards = deck.BuildPokerDeck()
		d.rng.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
	dealt := d.cards[:n]
	d.cards = d.cards[n:]
	return dealt
}

func formatHand(cards []card.Card) string {
	shown := make([]string, len(cards))
	for i, c := range cards {
		shown[i] = c.String()
	}
	return strings.Join(shown, " ")
}

func printSummary(sum session.Summary, seed uint64) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hands: %d\nScore: %d\nBest:  %s\n", sum.Hands, sum.Score, sum.Best)
	for _, c := range hand.Combinations {
		if n := sum.Counts[c]; n > 0 {
			fmt.Fprintf(&b, "\n%-16s %d", c, n)
		}
	}

	fmt.Println()
	pterm.DefaultBox.WithTitle(pterm.LightYellow("|SESSION|")).WithTitleTopCenter().
		WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).
		Println(b.String())
	pterm.Info.Printfln("Replay this deal with --seed %d", seed)
}
