package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rank is the index of a card rank, Two through Ace
type Rank int

// rank constants
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// RankCount is the number of ranks in a standard deck
const RankCount = 13

var rankNames = [RankCount]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}

	return rankNames[r]
}

// Suit is the index of a card suit
type Suit int

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// SuitCount is the number of suits in a standard deck
const SuitCount = 4

var suitSymbols = [SuitCount]string{"♧", "♢", "♡", "♤"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}

	return suitSymbols[s]
}

// FaceDownValue is returned by Value() when the card is face down
const FaceDownValue = -1

// Card is an individual playing card
// Only the face state of a card can change after it is created.
type Card struct {
	rank   Rank
	suit   Suit
	worth  int
	faceUp bool
}

// CardFactory creates the card for a rank and suit
type CardFactory func(rank Rank, suit Suit) Card

// NewCard returns a face-up card with the given worth
func NewCard(rank Rank, suit Suit, worth int) Card {
	return Card{
		rank:   rank,
		suit:   suit,
		worth:  worth,
		faceUp: true,
	}
}

// StandardCard is the default CardFactory
// Numbered cards are worth their number, Jack, Queen and King are worth 10 and an Ace is worth 11.
func StandardCard(rank Rank, suit Suit) Card {
	return NewCard(rank, suit, StandardWorth(rank))
}

// StandardWorth returns the base worth of a rank
func StandardWorth(rank Rank) int {
	switch {
	case rank == Ace:
		return 11
	case rank >= Ten:
		return 10
	default:
		return int(rank) + 2
	}
}

// Rank returns the rank
func (c *Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit
func (c *Card) Suit() Suit {
	return c.suit
}

// Worth returns the worth of the card regardless of its face state
func (c *Card) Worth() int {
	return c.worth
}

// IsFaceUp returns true if the card is face up
func (c *Card) IsFaceUp() bool {
	return c.faceUp
}

// Flip toggles the face state
func (c *Card) Flip() {
	c.faceUp = !c.faceUp
}

// Value is the worth of a face up card, or FaceDownValue
func (c *Card) Value() int {
	if c.faceUp {
		return c.worth
	}

	return FaceDownValue
}

// SortIndex orders all 52 cards by rank, then suit
func (c *Card) SortIndex() int {
	return int(c.rank)*SuitCount + int(c.suit)
}

// Less returns true if c sorts before card
func (c *Card) Less(card *Card) bool {
	return c.SortIndex() < card.SortIndex()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.suit == card.suit && c.rank == card.rank
}

func (c *Card) String() string {
	if !c.faceUp {
		return "??"
	}

	return c.Face()
}

// Face returns the card as if it were face up
func (c *Card) Face() string {
	return c.suit.String() + c.rank.String()
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a face-up standard Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, s)
	}

	n, _ := strconv.Atoi(match[1])

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return StandardCard(Rank(n-2), suit), nil
}

// CardsFromString will return a slice of cards from a string like 2c,3h,14s
func CardsFromString(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		card, err := CardFromString(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.suit {
	case Clubs:
		suit = "c"
	case Diamonds:
		suit = "d"
	case Hearts:
		suit = "h"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", int(card.rank)+2, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
