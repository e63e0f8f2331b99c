package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 13, RankCount)
	assert.Equal(t, 4, SuitCount)
	assert.Equal(t, 52, Size)
	assert.Equal(t, Rank(12), Ace)
}

func TestStandardWorth(t *testing.T) {
	a := assert.New(t)
	a.Equal(2, StandardWorth(Two))
	a.Equal(9, StandardWorth(Nine))
	a.Equal(10, StandardWorth(Ten))
	a.Equal(10, StandardWorth(Jack))
	a.Equal(10, StandardWorth(Queen))
	a.Equal(10, StandardWorth(King))
	a.Equal(11, StandardWorth(Ace))
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	card := StandardCard(Two, Hearts)
	a.Equal("♡2", card.String())

	card = StandardCard(Jack, Clubs)
	a.Equal("♧Jack", card.String())

	card = StandardCard(Ace, Spades)
	a.Equal("♤Ace", card.String())

	card.Flip()
	a.Equal("??", card.String())
	a.Equal("♤Ace", card.Face())
}

func TestCard_Value(t *testing.T) {
	a := assert.New(t)

	card := StandardCard(King, Diamonds)
	a.True(card.IsFaceUp())
	a.Equal(10, card.Value())

	card.Flip()
	a.False(card.IsFaceUp())
	a.Equal(FaceDownValue, card.Value())
	a.Equal(10, card.Worth())

	card.Flip()
	a.Equal(10, card.Value())
}

func TestCard_SortIndex(t *testing.T) {
	a := assert.New(t)

	twoClubs := StandardCard(Two, Clubs)
	twoSpades := StandardCard(Two, Spades)
	threeClubs := StandardCard(Three, Clubs)
	aceSpades := StandardCard(Ace, Spades)

	a.Equal(0, twoClubs.SortIndex())
	a.Equal(3, twoSpades.SortIndex())
	a.Equal(4, threeClubs.SortIndex())
	a.Equal(51, aceSpades.SortIndex())

	a.True(twoClubs.Less(&twoSpades))
	a.True(twoSpades.Less(&threeClubs))
	a.False(aceSpades.Less(&threeClubs))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromString("14s")
	a.NoError(err)
	a.Equal(Ace, card.Rank())
	a.Equal(Spades, card.Suit())
	a.Equal(11, card.Worth())
	a.True(card.IsFaceUp())

	card, err = CardFromString("10H")
	a.NoError(err)
	a.Equal(Ten, card.Rank())
	a.Equal(Hearts, card.Suit())

	_, err = CardFromString("15s")
	a.ErrorIs(err, ErrUnknownCard)

	_, err = CardFromString("1c")
	a.ErrorIs(err, ErrUnknownCard)

	_, err = CardFromString("2x")
	a.ErrorIs(err, ErrUnknownCard)
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromString("2c,13d,14h")
	a.NoError(err)
	a.Len(cards, 3)

	ptrs := []*Card{&cards[0], &cards[1], &cards[2]}
	a.Equal("2c,13d,14h", CardsToString(ptrs))
	a.Equal("", CardToString(nil))

	cards, err = CardsFromString("")
	a.NoError(err)
	a.Empty(cards)

	_, err = CardsFromString("2c,zz")
	a.ErrorIs(err, ErrUnknownCard)
}
