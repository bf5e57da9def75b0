package cmd

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kakusei/vncards/internal/card"
	"github.com/kakusei/vncards/internal/config"
	"github.com/kakusei/vncards/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card with ANSI art",
	Long: `Show displays a card with its face rendered as ANSI terminal art.
Use canonical card IDs like 'poker.hearts.ace' or 'narrative.3'.

The face image is looked up in the assets directory, which defaults to the
one in your config and can be overridden with --assets.

Examples:
  vncards show poker.spades.10
  vncards show character.2
  vncards show --assets ./assets psychosis.1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assetsFlag, _ := cmd.Flags().GetString("assets")
		lib, err := loadLibrary(assetsFlag)
		if err != nil {
			return err
		}

		c, err := lib.GetCard(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		art, err := cardArt(lib.Path, c)
		if err != nil {
			return fmt.Errorf("error loading ANSI art: %w", err)
		}

		displayCard(c, art)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("assets", "a", "", "Assets directory (defaults to the configured one)")
}

// cardArt returns the ANSI art of the card face, converting the image on first use
func cardArt(assetsDir string, c card.Card) (string, error) {
	imagePath := filepath.Join(assetsDir, c.Filename)
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("no card face found for %s: %s", c.ID(), imagePath)
	}

	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(imagePath))))
	if _, err := os.Stat(cachePath); os.IsNotExist(err) {
		if err := render.GenerateANSI(imagePath, cachePath); err != nil {
			return "", err
		}
	}

	return render.LoadANSI(cachePath)
}

// cardInfo returns the labelled lines shown next to the card art
func cardInfo(c card.Card, textWidth int) []string {
	label := func(name string) string {
		return colorize.CyanString("%-8s", name+":")
	}

	lines := []string{
		label("Card") + colorize.HiWhiteString(c.DisplayName()),
		label("ID") + colorize.HiWhiteString(c.ID()),
		label("Type") + colorize.HiWhiteString(c.Category().String()),
	}

	if suit, ok := c.Suit(); ok {
		lines = append(lines, label("Suit")+colorize.HiWhiteString("%s · %s", suit, suit.Symbol()))
	}
	if rank, ok := c.Rank(); ok {
		lines = append(lines, label("Rank")+colorize.HiWhiteString("%s (%d)", rank.Short(), rank))
	}
	if cardType, ok := c.CardType(); ok && cardType != "" {
		lines = append(lines, label("Kind")+colorize.HiWhiteString(cardType))
	}
	if genre, ok := c.Genre(); ok && genre != "" {
		lines = append(lines, label("Genre")+colorize.HiWhiteString(genre))
	}
	if price, ok := c.Price(); ok {
		lines = append(lines, label("Price")+colorize.YellowString("%d", price))
	}

	paragraph := func(title, text string) {
		if text == "" {
			return
		}
		lines = append(lines, "", colorize.CyanString(title+":"))
		lines = append(lines, render.WrapText(text, textWidth)...)
	}

	if effect, ok := c.Effect(); ok {
		paragraph("Effect", effect)
	}
	if desc, ok := c.Description(); ok {
		paragraph("Description", desc)
	}
	if m, ok := c.Metadata.(card.NarrativeMeta); ok {
		paragraph("Flavor", m.FlavorText)
	}

	return lines
}

// displayCard prints the card art with its information to the right
func displayCard(c card.Card, art string) {
	artLines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	artWidth := 0
	for _, line := range artLines {
		artWidth = max(artWidth, render.VisibleWidth(line))
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	const spacing = 4
	infoStartCol := artWidth + spacing
	infoLines := cardInfo(c, max(width-infoStartCol-2, 20))

	fmt.Println()
	for i := 0; i < max(len(artLines), len(infoLines)); i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStartCol-render.VisibleWidth(artLines[i])))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
