package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/kakusei/vncards/internal/card"
	"github.com/kakusei/vncards/internal/config"
	"github.com/kakusei/vncards/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build and inspect the game decks",
	Long:  `Commands for building and inspecting the poker deck and the game card decks.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls [poker|game|narrative|character|psychosis]",
	Short: "List the cards of a deck",
	Long: `List the cards of a deck in deck order. The poker deck is built in memory;
the other decks come from the card catalogs of the assets directory.

Examples:
  vncards deck ls
  vncards deck ls narrative --type setting
  vncards deck ls game --max-price 30
  vncards deck ls narrative --initial`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "poker"
		if len(args) == 1 {
			name = args[0]
		}

		assetsFlag, _ := cmd.Flags().GetString("assets")
		lib, err := loadLibrary(assetsFlag)
		if err != nil {
			return err
		}

		cards, err := lib.Deck(name)
		if err != nil {
			return err
		}

		if initial, _ := cmd.Flags().GetBool("initial"); initial {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			cards = deck.FilterByPriceAtMost(cards, cfg.InitialPriceLimit)
		}
		if cmd.Flags().Changed("max-price") {
			maxPrice, _ := cmd.Flags().GetUint16("max-price")
			cards = deck.FilterByPriceAtMost(cards, maxPrice)
		}
		if cmd.Flags().Changed("type") {
			cardType, _ := cmd.Flags().GetString("type")
			cards = deck.FilterByCardType(cards, cardType)
		}

		if len(cards) == 0 {
			fmt.Printf("No cards in the %s deck.\n", name)
			return nil
		}

		for _, c := range cards {
			printCardLine(c)
		}
		fmt.Printf("\n%d cards\n", len(cards))
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the assets directory and config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())

		for _, dir := range []string{deck.PokerDir, deck.NarrativeDir, deck.CharacterDir, deck.PsychosisDir} {
			if err := os.MkdirAll(fmt.Sprintf("%s/%s", cfg.AssetsDir, dir), 0755); err != nil {
				return fmt.Errorf("error creating assets directory: %w", err)
			}
		}

		fmt.Println("Assets directory initialized at:", cfg.AssetsDir)
		fmt.Println("Copy the card faces and catalogs there, then run 'vncards validate'.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckListCmd.Flags().StringP("assets", "a", "", "Assets directory (defaults to the configured one)")
	deckListCmd.Flags().Bool("initial", false, "Only list cards of the starting deck (priced at most initial_price_limit)")
	deckListCmd.Flags().Uint16("max-price", 0, "Only list cards costing at most this much")
	deckListCmd.Flags().String("type", "", "Only list narrative cards of this type (setting, plot twist, conflict)")
}

// loadLibrary loads the decks from the given or configured assets directory
func loadLibrary(assetsFlag string) (*deck.Library, error) {
	assetsDir, err := config.GetAssetsDir(assetsFlag)
	if err != nil {
		return nil, err
	}
	return deck.LoadLibrary(assetsDir)
}

// printCardLine prints one card of a deck listing
func printCardLine(c card.Card) {
	id := colorize.CyanString("%-22s", c.ID())

	switch c.Category() {
	case card.Poker:
		fmt.Printf("  %s %s\n", id, c)
	case card.Narrative:
		cardType, _ := c.CardType()
		price, _ := c.Price()
		fmt.Printf("  %s %s [%s] %s\n", id, colorize.HiWhiteString(c.DisplayName()), cardType, colorize.YellowString("%d", price))
	case card.Character:
		price, _ := c.Price()
		fmt.Printf("  %s %s %s\n", id, colorize.HiWhiteString(c.DisplayName()), colorize.YellowString("%d", price))
	default:
		fmt.Printf("  %s %s\n", id, colorize.HiWhiteString(c.DisplayName()))
	}
}
