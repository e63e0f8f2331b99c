package main

import (
	"fmt"
	"strings"

	"cardtable/internal/config"
	"cardtable/pkg/playable/blackjack"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var blackjackCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play a hand of Blackjack against the dealer",
	Long: `Blackjack deals two cards to the dealer and to every player, asks each
player for a bet, then asks each player to hit or stand until the hand is settled.

Examples:
  cardgames blackjack
  cardgames blackjack --players 3 --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Instance()
		opts := blackjack.DefaultOptions()
		opts.Seed = cfg.Blackjack.Seed
		if cmd.Flags().Changed("seed") {
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
		}

		table := blackjackTable{
			logger:         logrus.StandardLogger(),
			options:        opts,
			defaultPlayers: cfg.Blackjack.Players,
			minBet:         cfg.Blackjack.MinBet,
		}

		if cmd.Flags().Changed("players") {
			table.players, _ = cmd.Flags().GetInt("players")
		}

		return table.play(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
	},
}

func init() {
	blackjackCmd.Flags().IntP("players", "p", 0, "number of players (asked for when not given)")
	blackjackCmd.Flags().Int64P("seed", "s", 0, "shuffle the deck reproducibly (0 is random)")
}

type blackjackTable struct {
	logger  logrus.FieldLogger
	options blackjack.Options

	// players is asked for when zero
	players        int
	defaultPlayers int
	minBet         int
}

func (b blackjackTable) play(p *prompter) error {
	out := p.out
	_, _ = fmt.Fprintln(out, "Welcome! First up,")

	playerCount := b.players
	if playerCount <= 0 {
		var err error
		question := fmt.Sprintf("How many players will there be? [%d] ", b.defaultPlayers)
		if playerCount, err = p.askInt(question, 1, b.defaultPlayers); err != nil {
			return err
		}
	}

	e := blackjack.NewEngine(b.logger, b.options)
	_, players, err := e.Start(playerCount)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Alright! %d players!\n", len(players))
	for _, player := range players {
		question := fmt.Sprintf("%s: What will your bet be? $", player.PlayerID)
		bet, err := p.askInt(question, b.minBet, b.minBet)
		if err != nil {
			return err
		}

		if err := player.SetBet(bet); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "%s is betting $%d\n", player.PlayerID, bet)
	}

	_, _ = fmt.Fprintln(out, "Starting the game...")
	for {
		gameOver, res := e.Score()
		if len(res.Updates) > 0 {
			_, _ = fmt.Fprintln(out, strings.Join(res.Updates, "\n"))
		}

		if gameOver {
			_, _ = fmt.Fprintln(out, colorTable(e.Render()))
			_, _ = fmt.Fprintln(out, "Bets:")
			for _, payout := range res.Payouts {
				_, _ = fmt.Fprintln(out, colorPayout(payout))
			}

			return nil
		}

		_, _ = fmt.Fprintln(out, colorTable(e.Render()))
		for _, player := range players {
			if player.IsStanding() || !player.IsStillIn() {
				continue
			}

			question := fmt.Sprintf("%s: Do you want to hit or stand? [hit/stand]: ", player.PlayerID)
			standing, err := p.askStand(question)
			if err != nil {
				return err
			}

			if standing {
				_, _ = fmt.Fprintf(out, "%s will stand.\n", player.PlayerID)
				player.Stand()
			} else {
				_, _ = fmt.Fprintf(out, "%s will hit.\n", player.PlayerID)
			}
		}

		if err := e.Hit(); err != nil {
			return err
		}
	}
}

func colorTable(table string) string {
	lines := strings.Split(table, "\n")
	lines[0] = color.CyanString("%s", lines[0])
	return strings.Join(lines, "\n")
}

func colorPayout(p blackjack.Payout) string {
	switch {
	case p.Earnings > 0:
		return color.GreenString("%s", p.String())
	case p.Earnings < 0:
		return color.RedString("%s", p.String())
	default:
		return color.YellowString("%s", p.String())
	}
}
