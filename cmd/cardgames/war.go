package main

import (
	"errors"
	"fmt"
	"io"

	"cardtable/internal/config"
	"cardtable/pkg/playable/war"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var warCmd = &cobra.Command{
	Use:   "war",
	Short: "Play a game of War between two computer players",
	Long: `War deals half the deck to each player and plays rounds until one player
holds every card. Ties go to war: each player adds three face-down cards and
the next cards decide who takes the whole pile.

Examples:
  cardgames war
  cardgames war --seed 42 -v
  cardgames war --max-rounds 1000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Instance()
		opts := war.DefaultOptions()
		opts.Seed = cfg.War.Seed
		opts.MaxRounds = cfg.War.MaxRounds

		if cmd.Flags().Changed("seed") {
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
		}

		if cmd.Flags().Changed("max-rounds") {
			opts.MaxRounds, _ = cmd.Flags().GetInt("max-rounds")
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		return playWar(cmd.OutOrStdout(), logrus.StandardLogger(), opts, verbose)
	},
}

func init() {
	warCmd.Flags().Int64P("seed", "s", 0, "shuffle the deck reproducibly (0 is random)")
	warCmd.Flags().Int("max-rounds", war.DefaultMaxRounds, "give up after this many rounds")
	warCmd.Flags().BoolP("verbose", "v", false, "print every round")
}

func playWar(out io.Writer, logger logrus.FieldLogger, opts war.Options, verbose bool) error {
	g, err := war.NewGame(logger, opts)
	if err != nil {
		return err
	}

	if verbose {
		g.OnRound(func(res *war.RoundResult) {
			wars := ""
			if res.Wars > 0 {
				wars = color.YellowString(" after %d war(s)", res.Wars)
			}

			_, _ = fmt.Fprintf(out, "%d) Player %d won %d cards%s [%d / %d]\n",
				res.Round, res.Winner, len(res.Bounty), wars, res.Remaining[0], res.Remaining[1])
		})
	}

	res, err := g.Start()
	if errors.Is(err, war.ErrTooManyRounds) {
		p1, p2 := g.Players()
		_, _ = fmt.Fprintln(out, color.RedString("Game went on too long (%d rounds).", g.Round()))
		_, _ = fmt.Fprintf(out, "Player 1: %s\n", p1.Hand())
		_, _ = fmt.Fprintf(out, "Player 2: %s\n", p2.Hand())
		return err
	} else if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Game over after %d rounds\n", res.Rounds)
	_, _ = fmt.Fprintln(out, color.GreenString("The winner is player %d", res.Winner))
	_, _ = fmt.Fprintf(out, "Remaining: %d / %d\n", res.Remaining[0], res.Remaining[1])

	return nil
}
