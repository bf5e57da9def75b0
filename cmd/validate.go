package cmd

import (
	"fmt"

	"github.com/kakusei/vncards/internal/config"
	"github.com/kakusei/vncards/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [assets_dir]",
	Short: "Validate a game assets directory",
	Long: `Validate checks that an assets directory holds a face image for each of the
52 poker cards, both card backs, and well-formed narrative, character and psychosis
catalogs. Without an argument the configured assets directory is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var assetsPath string
		if len(args) == 1 {
			assetsPath = args[0]
		} else {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			assetsPath = cfg.AssetsDir
		}

		// Create validator and run validation
		v := validator.NewValidator(assetsPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Assets '%s' are complete.\n", assetsPath)
		} else {
			fmt.Printf("❌ Assets '%s' have %d validation errors:\n", assetsPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
