package main

import (
	"os"
	"strings"

	"cardtable/internal/config"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cardgames",
	Short: "Play War and Blackjack in the terminal",
	Long: `cardgames plays card games against the computer.

War runs by itself until one player holds the whole deck.
Blackjack seats one or more players at a table with the dealer and asks each
player for a bet and then whether to hit or stand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
		return setupLogger()
	},
}

func init() {
	rootCmd.AddCommand(warCmd)
	rootCmd.AddCommand(blackjackCmd)
}

func setupLogger() error {
	if err := config.Load(); err != nil {
		return err
	}

	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// keep log lines off the game output
	logrus.SetOutput(os.Stderr)
	return nil
}
