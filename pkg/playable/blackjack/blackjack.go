package blackjack

import (
	"fmt"

	"cardtable/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// dealerStandsAt is the score at which the dealer stops hitting
const dealerStandsAt = 17

// initialCards is the number of cards dealt to every hand on Start()
const initialCards = 2

// Engine runs a blackjack table with a dealer and one or more players
type Engine struct {
	ID      string
	options Options
	deck    *deck.Deck
	dealer  *Hand
	players []*Hand
	rounds  int
	over    bool
	logger  logrus.FieldLogger
}

// NewEngine returns a new table with a freshly shuffled deck
func NewEngine(logger logrus.FieldLogger, options Options) *Engine {
	opts := make([]deck.Option, 0, 1)
	if options.Seed > 0 {
		opts = append(opts, deck.WithSeed(options.Seed))
	}

	return newEngine(logger, deck.New(opts...), options)
}

func newEngine(logger logrus.FieldLogger, d *deck.Deck, options Options) *Engine {
	id := uuid.New().String()
	return &Engine{
		ID:      id,
		options: options,
		deck:    d,
		logger:  logger.WithField("game", id),
	}
}

// Start deals two cards to the dealer, the second face down, and two cards to each player.
// At least one player is always dealt in.
func (e *Engine) Start(playerCount int) (*Hand, []*Hand, error) {
	if e.dealer != nil {
		return nil, nil, ErrGameStarted
	}

	if playerCount < 1 {
		playerCount = 1
	}

	if need := initialCards * (playerCount + 1); !e.deck.CanDraw(need) {
		return nil, nil, fmt.Errorf("%d players need %d cards, %d left: %w", playerCount, need, e.deck.CardsLeft(), deck.ErrEmptyDeck)
	}

	dealer, err := deck.DealHand(e.deck, initialCards, newHand)
	if err != nil {
		return nil, nil, err
	}

	dealer.PlayerID = "Dealer"
	dealer.Card(1).Flip()

	players := make([]*Hand, playerCount)
	for i := range players {
		p, err := deck.DealHand(e.deck, initialCards, newHand)
		if err != nil {
			return nil, nil, fmt.Errorf("could not deal player %d: %w", i+1, err)
		}

		p.PlayerID = fmt.Sprintf("Player %d", i+1)
		players[i] = p
	}

	e.dealer = dealer
	e.players = players

	e.logger.WithField("players", playerCount).Info("dealt")
	return e.dealer, e.Players(), nil
}

// Dealer returns the dealer's hand
func (e *Engine) Dealer() *Hand {
	return e.dealer
}

// Players returns the player hands in seat order
func (e *Engine) Players() []*Hand {
	return append([]*Hand{}, e.players...)
}

// Deck returns the deck the table deals from
func (e *Engine) Deck() *deck.Deck {
	return e.deck
}

// IsGameOver returns true once Score() has ended the game
func (e *Engine) IsGameOver() bool {
	return e.over
}

// Hit deals one card to every player who is still in, not standing and under 21,
// then lets the dealer act. The dealer acts once per call unless every player
// is done, in which case the dealer plays out the hand.
func (e *Engine) Hit() error {
	if e.dealer == nil {
		return ErrGameNotStarted
	}

	if e.over {
		return ErrGameIsOver
	}

	dealer := e.dealer
	if hole := dealer.Card(1); !hole.IsFaceUp() {
		hole.Flip()
	}

	allStanding := true
	for _, p := range e.players {
		if !p.stillIn {
			continue
		}

		allStanding = allStanding && p.standing
		if p.Score() < BlackjackScore && !p.standing {
			if err := p.Hit(); err != nil {
				return fmt.Errorf("could not hit %s: %w", p.PlayerID, err)
			}
		}
	}

	for {
		if dealer.Score() < dealerStandsAt {
			if err := dealer.Hit(); err != nil {
				return fmt.Errorf("could not hit dealer: %w", err)
			}
		} else {
			dealer.standing = true
		}

		if dealer.standing || !allStanding {
			break
		}
	}

	e.logger.WithFields(logrus.Fields{
		"dealer":      dealer.Score(),
		"allStanding": allStanding,
	}).Debug("hit")

	return nil
}

// Score settles every hand that can be settled and reports what happened.
// The first return value is true when the game is over, in which case the
// result also carries the payouts.
func (e *Engine) Score() (bool, *Result) {
	if e.dealer == nil {
		panic("Score() called before Start()")
	}

	e.rounds++
	updates := e.score()
	res := &Result{
		Round:   e.rounds,
		Updates: updates,
	}

	if e.over {
		res.GameOver = true
		res.Payouts = e.Payouts()

		e.logger.WithFields(logrus.Fields{
			"round":   e.rounds,
			"payouts": len(res.Payouts),
		}).Info("game over")
	}

	return e.over, res
}

func (e *Engine) score() []string {
	updates := make([]string, 0)
	dealer := e.dealer
	dealerScore := dealer.Score()

	// a bust loses the bet, even if the dealer busts too
	standers := make([]*Hand, 0, len(e.players))
	for _, p := range e.players {
		if !p.stillIn {
			continue
		}

		score := p.Score()
		switch {
		case score > BlackjackScore:
			p.lose()
			updates = append(updates, fmt.Sprintf("%s busts!", p.PlayerID))
		case score == BlackjackScore && dealerScore != BlackjackScore:
			p.natural()
			updates = append(updates, fmt.Sprintf("%s got blackjack!", p.PlayerID))
		case p.standing:
			standers = append(standers, p)
		}
	}

	switch {
	case dealerScore > BlackjackScore:
		for _, p := range standers {
			p.win()
		}

		dealer.stillIn = false
		updates = append(updates, "dealer busts!")
	case dealerScore == BlackjackScore:
		updates = append(updates, "dealer gets blackjack!")
		for _, p := range e.players {
			if !p.stillIn {
				continue
			}

			if p.Score() == dealerScore {
				p.push()
				updates = append(updates, fmt.Sprintf("%s and the dealer push.", p.PlayerID))
			} else {
				p.lose()
				updates = append(updates, fmt.Sprintf("%s gets beat!", p.PlayerID))
			}
		}
	case dealer.standing:
		// the dealer pays higher totals, collects from lower totals and pushes on a tie
		updates = append(updates, "dealer stands!")
		for _, p := range standers {
			score := p.Score()
			switch {
			case score > dealerScore:
				p.win()
				updates = append(updates, fmt.Sprintf("%s beat the dealer!", p.PlayerID))
			case score < dealerScore:
				p.lose()
				updates = append(updates, fmt.Sprintf("%s lost to the dealer!", p.PlayerID))
			default:
				p.push()
				updates = append(updates, fmt.Sprintf("%s and the dealer push!", p.PlayerID))
			}
		}

		dealer.stillIn = false
	}

	stillGoing := false
	for _, p := range e.players {
		stillGoing = stillGoing || p.stillIn
	}

	if !stillGoing || !dealer.stillIn {
		updates = append(updates, "Game over.")
		e.over = true
	}

	return updates
}

// Payouts returns the earnings of every settled hand in seat order
func (e *Engine) Payouts() []Payout {
	payouts := make([]Payout, 0, len(e.players))
	for _, p := range e.players {
		if earnings, ok := p.Earnings(); ok {
			payouts = append(payouts, Payout{
				PlayerID: p.PlayerID,
				Earnings: earnings,
			})
		}
	}

	return payouts
}
