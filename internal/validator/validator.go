package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kakusei/vncards/internal/card"
	"github.com/kakusei/vncards/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	AssetsPath string
	Results    ValidationResults
}

// knownCardTypes are the narrative card types the story decks draw from
var knownCardTypes = map[string]bool{
	deck.TypeSetting:   true,
	deck.TypePlotTwist: true,
	deck.TypeConflict:  true,
}

func NewValidator(assetsPath string) *Validator {
	return &Validator{
		AssetsPath: assetsPath,
		Results:    ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	info, err := os.Stat(v.AssetsPath)
	if err != nil {
		return v.Results, fmt.Errorf("assets directory not found: %s", v.AssetsPath)
	}
	if !info.IsDir() {
		return v.Results, fmt.Errorf("not a directory: %s", v.AssetsPath)
	}

	v.validatePokerCards()
	v.validateCardBacks()
	v.validateNarrativeCatalog()
	v.validateCharacterCatalog()
	v.validatePsychosisCatalog()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(v.AssetsPath, rel))
	return err == nil
}

// validatePokerCards checks that every card of the poker deck has a face image
func (v *Validator) validatePokerCards() {
	if !v.exists(deck.PokerDir) {
		v.errorf("%s directory not found", deck.PokerDir)
		return
	}

	// Group missing faces per suit to keep the report short
	missing := make(map[card.Suit][]string)
	for _, c := range deck.BuildPokerDeck() {
		if v.exists(c.Filename) {
			continue
		}
		suit, _ := c.Suit()
		rank, _ := c.Rank()
		missing[suit] = append(missing[suit], rank.Short())
	}

	for _, suit := range card.Suits {
		if ranks := missing[suit]; len(ranks) > 0 {
			v.errorf("missing %s faces in %s: %s", suit, deck.PokerDir, strings.Join(ranks, ", "))
		}
	}
}

// validateCardBacks checks both card back images
func (v *Validator) validateCardBacks() {
	if !v.exists(deck.PokerDir) {
		return // Already reported
	}

	backs := []string{
		card.New(card.Ace, card.Hearts).BackFilename(),
		card.Card{}.BackFilename(),
	}
	for _, back := range backs {
		if !v.exists(back) {
			v.warnf("card back image not found: %s", back)
		}
	}
}

// loadCatalog decodes a catalog directory, reporting problems.
// It returns false when there is nothing further to check.
func loadCatalog[T any](v *Validator, dir string, entries *[]T) bool {
	if !v.exists(dir) {
		v.warnf("%s directory not found", dir)
		return false
	}

	path := deck.CatalogFile(filepath.Join(v.AssetsPath, dir))
	if path == "" {
		v.warnf("no cards.json or cards.toml found in %s", dir)
		return false
	}

	if err := deck.DecodeCatalogFile(path, entries); err != nil {
		v.errorf("%v", err)
		return false
	}

	if len(*entries) == 0 {
		v.warnf("%s catalog is empty", dir)
		return false
	}
	return true
}

// checkFace warns when the face image of the index-th card of dir is missing
func (v *Validator) checkFace(dir string, index int) {
	face := fmt.Sprintf("%s/card-%d.png", dir, index)
	if !v.exists(face) {
		v.warnf("missing card face: %s", face)
	}
}

func (v *Validator) validateNarrativeCatalog() {
	var entries []deck.NarrativeEntry
	if !loadCatalog(v, deck.NarrativeDir, &entries) {
		return
	}

	for i, e := range entries {
		if e.Name == "" {
			v.errorf("%s card %d has no name", deck.NarrativeDir, i+1)
		}
		if !knownCardTypes[e.CardType] {
			v.warnf("%s card %d has unknown card_type %q", deck.NarrativeDir, i+1, e.CardType)
		}
		v.checkFace(deck.NarrativeDir, i+1)
	}
}

func (v *Validator) validateCharacterCatalog() {
	var entries []deck.CharacterEntry
	if !loadCatalog(v, deck.CharacterDir, &entries) {
		return
	}

	for i, e := range entries {
		if e.Name == "" {
			v.errorf("%s card %d has no name", deck.CharacterDir, i+1)
		}
		v.checkFace(deck.CharacterDir, i+1)
	}
}

func (v *Validator) validatePsychosisCatalog() {
	var entries []deck.PsychosisEntry
	if !loadCatalog(v, deck.PsychosisDir, &entries) {
		return
	}

	for i, e := range entries {
		if e.Name == "" {
			v.errorf("%s card %d has no name", deck.PsychosisDir, i+1)
		}
		v.checkFace(deck.PsychosisDir, i+1)
	}
}
