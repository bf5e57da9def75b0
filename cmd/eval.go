package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/kakusei/vncards/internal/card"
	"github.com/kakusei/vncards/internal/hand"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <card>...",
	Short: "Score a poker hand",
	Long: `Eval scores the given cards the way the game does and prints the
combination and its score. Cards are written as a rank followed by a suit,
e.g. AH, 10s, TD or Q♣.

Examples:
  vncards eval 10H JH QH KH AH
  vncards eval 2c 2d 9s`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.ParseAll(args)
		if err != nil {
			return err
		}

		result, err := hand.Evaluate(cards)
		if err != nil {
			return err
		}

		shown := make([]string, len(cards))
		for i, c := range cards {
			shown[i] = c.String()
		}

		fmt.Println(colorize.CyanString("Hand:        ") + strings.Join(shown, " "))
		fmt.Println(colorize.CyanString("Combination: ") + colorize.HiWhiteString(result.Combination.String()))
		fmt.Println(colorize.CyanString("Score:       ") + colorize.YellowString("%d", result.Score))

		if desc, err := hand.Describe(cards); err == nil {
			fmt.Println(colorize.CyanString("Reads as:    ") + desc)
		} else if verbose {
			fmt.Println(colorize.HiBlackString("(no conventional reading: %v)", err))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(evalCmd)
}
