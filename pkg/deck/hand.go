package deck

import "fmt"

// Hand represents an ordered collection of cards dealt from a deck
// The first card is the bottom of the hand and the last card is the top.
type Hand struct {
	deck  *Deck
	cards []CardID
}

// Deck returns the deck the hand draws from
func (h *Hand) Deck() *Deck {
	return h.deck
}

// Remaining returns the number of cards in the hand
func (h *Hand) Remaining() int {
	return len(h.cards)
}

// IDs returns a copy of the card handles, bottom first
func (h *Hand) IDs() []CardID {
	return append([]CardID{}, h.cards...)
}

// Cards returns the cards in the hand, bottom first
func (h *Hand) Cards() []*Card {
	return h.deck.cardsFor(h.cards)
}

// Card returns the card at position i, where 0 is the bottom
func (h *Hand) Card(i int) *Card {
	return h.deck.Card(h.cards[i])
}

// Hit draws a card from the deck and adds it to the top of the hand
func (h *Hand) Hit() error {
	id, err := h.deck.Draw()
	if err != nil {
		return err
	}

	h.cards = append(h.cards, id)
	return nil
}

// Draw removes and returns the top n cards, most recently added first
func (h *Hand) Draw(n int) ([]CardID, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}

	have := len(h.cards)
	if n > have {
		return nil, fmt.Errorf("want %d, have %d: %w", n, have, ErrInsufficientCards)
	}

	drawn := make([]CardID, n)
	for i := 0; i < n; i++ {
		drawn[i] = h.cards[have-1-i]
	}

	h.cards = h.cards[:have-n]
	return drawn, nil
}

// DrawOne removes and returns the top card
func (h *Hand) DrawOne() (CardID, error) {
	drawn, err := h.Draw(1)
	if err != nil {
		return -1, err
	}

	return drawn[0], nil
}

// PlaceBottom adds the cards to the bottom of the hand, keeping their order
func (h *Hand) PlaceBottom(ids ...CardID) {
	if len(ids) == 0 {
		return
	}

	cards := make([]CardID, 0, len(ids)+len(h.cards))
	cards = append(cards, ids...)
	h.cards = append(cards, h.cards...)
}

func (h *Hand) String() string {
	return CardsToString(h.Cards())
}
