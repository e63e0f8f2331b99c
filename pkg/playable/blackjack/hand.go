package blackjack

import (
	"cardtable/pkg/deck"
)

// BlackjackScore is the best possible score
const BlackjackScore = 21

// earnings multipliers
const (
	multiplierWin     = 1.0
	multiplierNatural = 1.5
	multiplierPush    = 0.0
	multiplierLoss    = -1.0
)

// Hand is a blackjack hand for a player or the dealer
type Hand struct {
	*deck.Hand
	PlayerID string

	bet      int
	standing bool
	stillIn  bool
	earnings *int
}

func newHand(h *deck.Hand) *Hand {
	return &Hand{
		Hand:    h,
		stillIn: true,
	}
}

// Bet returns the bet
func (h *Hand) Bet() int {
	return h.bet
}

// SetBet sets the bet for the round
func (h *Hand) SetBet(bet int) error {
	if bet < 0 {
		return ErrNegativeBet
	}

	h.bet = bet
	return nil
}

// Stand will stop the hand from taking more cards
func (h *Hand) Stand() {
	h.standing = true
}

// IsStanding returns true if the hand stands
func (h *Hand) IsStanding() bool {
	return h.standing
}

// IsStillIn returns true until the hand has been settled
func (h *Hand) IsStillIn() bool {
	return h.stillIn
}

// Earnings returns the signed earnings and true once the hand is settled
func (h *Hand) Earnings() (int, bool) {
	if h.earnings == nil {
		return 0, false
	}

	return *h.earnings, true
}

// Score computes the blackjack score of the face-up cards.
// Aces are counted last, one at a time in hand order, as 11 if that keeps the
// running total at or under 21 and as 1 otherwise.
func (h *Hand) Score() int {
	score := 0
	aces := 0
	for _, c := range h.Cards() {
		if !c.IsFaceUp() {
			continue
		}

		if c.Rank() == deck.Ace {
			aces++
			continue
		}

		worth := c.Worth()
		if worth > 10 {
			worth = 10
		}

		score += worth
	}

	for i := 0; i < aces; i++ {
		if score+11 > BlackjackScore {
			score++
		} else {
			score += 11
		}
	}

	return score
}

// ScoreCards scores a set of face-up cards as a single hand
// A card that appears twice is an error.
func ScoreCards(cards []deck.Card) (int, error) {
	h, err := deck.New(deck.WithoutShuffle()).HandWith(cards...)
	if err != nil {
		return 0, err
	}

	return newHand(h).Score(), nil
}

func (h *Hand) settle(multiplier float64) {
	earnings := int(float64(h.bet) * multiplier)
	h.earnings = &earnings
	h.stillIn = false
}

func (h *Hand) win() {
	h.settle(multiplierWin)
}

func (h *Hand) natural() {
	h.settle(multiplierNatural)
}

func (h *Hand) push() {
	h.settle(multiplierPush)
}

func (h *Hand) lose() {
	h.settle(multiplierLoss)
}
