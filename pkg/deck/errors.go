package deck

import "errors"

// ErrEmptyDeck is an error when a draw is attempted and there are no more cards
var ErrEmptyDeck = errors.New("deck is empty")

// ErrInsufficientCards is an error when more cards are drawn from a hand than it holds
var ErrInsufficientCards = errors.New("not enough cards in hand")

// ErrUnknownCard is an error when a card cannot be parsed or is not held by the deck
var ErrUnknownCard = errors.New("unknown card")
