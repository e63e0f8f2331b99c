package war

import (
	"fmt"

	"cardtable/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// handSize is the number of cards each player starts with
const handSize = deck.Size / 2

// warCards is the number of face-down cards each player adds to the bounty on a tie
const warCards = 3

// Outcome constants
const (
	OutcomeTie = iota
	OutcomePlayerOne
	OutcomePlayerTwo
)

// Game is a game of War
type Game struct {
	ID      string
	options Options
	deck    *deck.Deck
	players [2]*Player
	round   int
	logger  logrus.FieldLogger

	onRound func(*RoundResult)

	// err is set when the game can no longer be played
	err error
}

// RoundResult describes a decided round
type RoundResult struct {
	Round int `json:"round"`
	// Winner is 1 or 2
	Winner int `json:"winner"`
	// Wars is the number of tie escalations in the round
	Wars      int      `json:"wars"`
	Bounty    []string `json:"bounty"`
	Remaining [2]int   `json:"remaining"`
}

// Result is the outcome of a complete game
type Result struct {
	GameID string `json:"gameId"`
	Rounds int    `json:"rounds"`
	// Winner is 1 or 2
	Winner    int    `json:"winner"`
	Remaining [2]int `json:"remaining"`
	Seed      int64  `json:"seed"`
}

// NewGame shuffles a deck and deals half of it to each player
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	opts := make([]deck.Option, 0, 1)
	if options.Seed > 0 {
		opts = append(opts, deck.WithSeed(options.Seed))
	}

	d := deck.New(opts...)
	logger = logger.WithField("deck", d.HashCode())

	p1, err := d.Hand(handSize)
	if err != nil {
		return nil, err
	}

	p2, err := d.Hand(handSize)
	if err != nil {
		return nil, err
	}

	return newGame(logger, d, p1, p2, options), nil
}

func newGame(logger logrus.FieldLogger, d *deck.Deck, h1, h2 *deck.Hand, options Options) *Game {
	if options.MaxRounds <= 0 {
		options.MaxRounds = DefaultMaxRounds
	}

	id := uuid.New().String()
	return &Game{
		ID:      id,
		options: options,
		deck:    d,
		players: [2]*Player{newPlayer("Player 1", h1), newPlayer("Player 2", h2)},
		logger:  logger.WithField("game", id),
	}
}

// Outcome compares two cards by worth
// Returns OutcomeTie, OutcomePlayerOne if card1 wins or OutcomePlayerTwo if card2 wins.
func Outcome(card1, card2 *deck.Card) int {
	switch {
	case card1.Worth() > card2.Worth():
		return OutcomePlayerOne
	case card1.Worth() < card2.Worth():
		return OutcomePlayerTwo
	default:
		return OutcomeTie
	}
}

// OnRound registers a function called after every decided round
func (g *Game) OnRound(fn func(*RoundResult)) {
	g.onRound = fn
}

// Players returns both players
func (g *Game) Players() (*Player, *Player) {
	return g.players[0], g.players[1]
}

// Deck returns the deck the hands were dealt from
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// Round returns the number of decided rounds
func (g *Game) Round() int {
	return g.round
}

// IsOver returns true if either player is out of cards
func (g *Game) IsOver() bool {
	return g.players[0].Remaining() == 0 || g.players[1].Remaining() == 0
}

// Start plays rounds until one player has every card
func (g *Game) Start() (*Result, error) {
	for !g.IsOver() {
		if _, err := g.PlayRound(); err != nil {
			return nil, err
		}
	}

	res := g.result()
	g.logger.WithFields(logrus.Fields{
		"rounds": res.Rounds,
		"winner": res.Winner,
	}).Info("game over")

	return res, nil
}

// PlayRound plays a single round, going to war for as long as the top cards tie
func (g *Game) PlayRound() (*RoundResult, error) {
	if g.err != nil {
		return nil, g.err
	}

	if g.IsOver() {
		return nil, ErrGameIsOver
	}

	if g.round >= g.options.MaxRounds {
		g.err = ErrTooManyRounds
		g.logger.WithFields(logrus.Fields{
			"rounds":  g.round,
			"max":     g.options.MaxRounds,
			"player1": g.players[0].hand.String(),
			"player2": g.players[1].hand.String(),
		}).Warn("game went on too long")

		return nil, g.err
	}

	p1, p2 := g.players[0], g.players[1]
	bounty := make([]deck.CardID, 0, 2)
	wars := 0

	var victor int
	for {
		c1, err := p1.hand.DrawOne()
		if err != nil {
			return nil, g.abort(err)
		}

		c2, err := p2.hand.DrawOne()
		if err != nil {
			return nil, g.abort(err)
		}

		bounty = append(bounty, c1, c2)
		outcome := Outcome(g.deck.Card(c1), g.deck.Card(c2))

		// a player who cannot fund a war loses the round
		if outcome == OutcomePlayerOne || p2.Remaining() <= warCards {
			victor = 0
			break
		}

		if outcome == OutcomePlayerTwo || p1.Remaining() <= warCards {
			victor = 1
			break
		}

		w1, err := p1.hand.Draw(warCards)
		if err != nil {
			return nil, g.abort(err)
		}

		w2, err := p2.hand.Draw(warCards)
		if err != nil {
			return nil, g.abort(err)
		}

		bounty = append(bounty, w1...)
		bounty = append(bounty, w2...)
		wars++
	}

	g.round++
	g.players[victor].collect(bounty)

	res := &RoundResult{
		Round:     g.round,
		Winner:    victor + 1,
		Wars:      wars,
		Bounty:    g.cardStrings(bounty),
		Remaining: [2]int{p1.Remaining(), p2.Remaining()},
	}

	g.logger.WithFields(logrus.Fields{
		"round":  res.Round,
		"winner": res.Winner,
		"wars":   res.Wars,
	}).Debug("round decided")

	if g.onRound != nil {
		g.onRound(res)
	}

	return res, nil
}

func (g *Game) abort(err error) error {
	g.err = fmt.Errorf("round %d: %w", g.round+1, err)
	return g.err
}

func (g *Game) cardStrings(ids []deck.CardID) []string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = g.deck.Card(id).Face()
	}

	return s
}

func (g *Game) result() *Result {
	winner := 1
	if g.players[0].Remaining() == 0 {
		winner = 2
	}

	return &Result{
		GameID:    g.ID,
		Rounds:    g.round,
		Winner:    winner,
		Remaining: [2]int{g.players[0].Remaining(), g.players[1].Remaining()},
		Seed:      g.options.Seed,
	}
}
