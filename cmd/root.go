package cmd

import (
	"github.com/kakusei/vncards/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "vncards",
	Short: "Card decks and poker hand scoring for the visual novel card game",
	Long: `vncards builds the decks of the visual novel card game, scores poker hands
the way the game does, and checks that an assets directory holds every card face.`,
	SilenceUsage: true,
}

var verbose bool

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newLogger builds the logger from the configured level
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}
