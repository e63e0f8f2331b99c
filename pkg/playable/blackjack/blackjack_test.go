package blackjack

import (
	"fmt"
	"testing"

	"cardtable/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// createTestEngine seats hands built from card strings, all with a bet of 10
func createTestEngine(t *testing.T, dealer string, players ...string) *Engine {
	t.Helper()

	d := deck.New(deck.WithoutShuffle())
	e := newEngine(logrus.StandardLogger(), d, DefaultOptions())
	e.dealer = mustHand(t, d, dealer)
	e.dealer.PlayerID = "Dealer"

	for i, cards := range players {
		p := mustHand(t, d, cards)
		p.PlayerID = fmt.Sprintf("Player %d", i+1)
		if err := p.SetBet(10); err != nil {
			t.Fatal(err)
		}

		e.players = append(e.players, p)
	}

	return e
}

// createStackedEngine deals from a deck whose top cards are drawn in the given order
func createStackedEngine(t *testing.T, cards string) *Engine {
	t.Helper()

	stacked, err := deck.CardsFromString(cards)
	if err != nil {
		t.Fatal(err)
	}

	d := deck.New(deck.WithSeed(1))
	if err := d.Stack(stacked...); err != nil {
		t.Fatal(err)
	}

	return newEngine(logrus.StandardLogger(), d, DefaultOptions())
}

func cardsInPlay(e *Engine) int {
	n := e.Deck().CardsLeft() + e.Dealer().Remaining()
	for _, p := range e.Players() {
		n += p.Remaining()
	}

	return n
}

func TestEngine_Start(t *testing.T) {
	a := assert.New(t)
	e := createStackedEngine(t, "10h,6h,2c,3c,10d,9d")

	dealer, players, err := e.Start(2)
	a.NoError(err)
	a.Same(e.Dealer(), dealer)
	a.Len(players, 2)

	a.Equal("Dealer", dealer.PlayerID)
	a.Equal("10h,6h", dealer.String())
	a.True(dealer.Card(0).IsFaceUp())
	a.False(dealer.Card(1).IsFaceUp())
	a.Equal(10, dealer.Score())

	a.Equal("Player 1", players[0].PlayerID)
	a.Equal("2c,3c", players[0].String())
	a.Equal("Player 2", players[1].PlayerID)
	a.Equal("10d,9d", players[1].String())
	a.Equal(52, cardsInPlay(e))

	_, _, err = e.Start(2)
	a.ErrorIs(err, ErrGameStarted)
}

func TestEngine_Start_atLeastOnePlayer(t *testing.T) {
	a := assert.New(t)

	_, players, err := NewEngine(logrus.StandardLogger(), DefaultOptions()).Start(0)
	a.NoError(err)
	a.Len(players, 1)
	a.Equal("Player 1", players[0].PlayerID)
}

func TestEngine_Start_tooManyPlayers(t *testing.T) {
	a := assert.New(t)
	e := NewEngine(logrus.StandardLogger(), DefaultOptions())

	_, _, err := e.Start(26)
	a.ErrorIs(err, deck.ErrEmptyDeck)
	a.Equal(52, e.Deck().CardsLeft())

	_, players, err := e.Start(25)
	a.NoError(err)
	a.Len(players, 25)
	a.Equal(0, e.Deck().CardsLeft())
}

func TestEngine_Hit(t *testing.T) {
	a := assert.New(t)
	e := createStackedEngine(t, "10h,6h,2c,3c,10d,9d,4c,5h")

	dealer, players, err := e.Start(2)
	a.NoError(err)
	for _, p := range players {
		a.NoError(p.SetBet(10))
	}
	players[1].Stand()

	a.NoError(e.Hit())
	a.True(dealer.Card(1).IsFaceUp())
	a.Equal("2c,3c,4c", players[0].String())
	a.Equal("10d,9d", players[1].String())

	// not everyone is standing, so the dealer only acts once
	a.Equal("10h,6h,5h", dealer.String())
	a.Equal(21, dealer.Score())
	a.False(dealer.IsStanding())
	a.Equal(52, cardsInPlay(e))

	gameOver, res := e.Score()
	a.True(gameOver)
	a.Equal([]string{
		"dealer gets blackjack!",
		"Player 1 gets beat!",
		"Player 2 gets beat!",
		"Game over.",
	}, res.Updates)
	a.Equal([]string{"Player 1 lost $10", "Player 2 lost $10"}, res.PayoutLines())

	a.ErrorIs(e.Hit(), ErrGameIsOver)
}

func TestEngine_Hit_dealerPlaysOut(t *testing.T) {
	a := assert.New(t)
	e := createStackedEngine(t, "10h,2h,10c,9c,3h,2d,4h")

	dealer, players, err := e.Start(1)
	a.NoError(err)
	a.NoError(players[0].SetBet(20))
	players[0].Stand()

	a.NoError(e.Hit())
	a.Equal("10h,2h,3h,2d", dealer.String())
	a.True(dealer.IsStanding())
	a.Equal(17, dealer.Score())
	a.Equal("10c,9c", players[0].String())

	gameOver, res := e.Score()
	a.True(gameOver)
	a.Equal([]string{"dealer stands!", "Player 1 beat the dealer!", "Game over."}, res.Updates)
	a.Equal([]Payout{{PlayerID: "Player 1", Earnings: 20}}, res.Payouts)
}

func TestEngine_Hit_dealerStandsWithoutHitting(t *testing.T) {
	a := assert.New(t)
	e := createStackedEngine(t, "10h,8h,2c,3c,4c")

	dealer, players, err := e.Start(1)
	a.NoError(err)

	a.NoError(e.Hit())
	a.Equal("10h,8h", dealer.String())
	a.True(dealer.IsStanding())
	a.Equal("2c,3c,4c", players[0].String())
}

func TestEngine_Hit_notStarted(t *testing.T) {
	e := NewEngine(logrus.StandardLogger(), DefaultOptions())
	assert.ErrorIs(t, e.Hit(), ErrGameNotStarted)
	assert.Equal(t, "Not started", e.Render())
	assert.Panics(t, func() {
		e.Score()
	})
}

func TestEngine_Score_playerBustsWithDealer(t *testing.T) {
	a := assert.New(t)
	e := createTestEngine(t, "13d,12d,3d", "13c,12c,2c")
	e.players[0].Stand()

	gameOver, res := e.Score()
	a.True(gameOver)
	a.Equal([]string{"Player 1 busts!", "dealer busts!", "Game over."}, res.Updates)

	earnings, ok := e.players[0].Earnings()
	a.True(ok)
	a.Equal(-10, earnings)
	a.False(e.dealer.IsStillIn())
}

func TestEngine_Score_dealerBlackjack(t *testing.T) {
	a := assert.New(t)
	e := createTestEngine(t, "14h,13h", "14c,13c", "13d,12d")

	gameOver, res := e.Score()
	a.True(gameOver)
	a.Equal([]string{
		"dealer gets blackjack!",
		"Player 1 and the dealer push.",
		"Player 2 gets beat!",
		"Game over.",
	}, res.Updates)
	a.Equal([]Payout{
		{PlayerID: "Player 1", Earnings: 0},
		{PlayerID: "Player 2", Earnings: -10},
	}, res.Payouts)
	a.Equal([]string{"Player 1 pushed, keeping their bet.", "Player 2 lost $10"}, res.PayoutLines())
}

func TestEngine_Score_dealerStands(t *testing.T) {
	a := assert.New(t)
	e := createTestEngine(t, "10h,8h", "10c,9c", "10d,7d", "10s,8s", "2c,3c")
	e.dealer.Stand()
	for _, p := range e.players[:3] {
		p.Stand()
	}

	gameOver, res := e.Score()
	a.True(gameOver)
	a.Equal([]string{
		"dealer stands!",
		"Player 1 beat the dealer!",
		"Player 2 lost to the dealer!",
		"Player 3 and the dealer push!",
		"Game over.",
	}, res.Updates)
	a.Equal([]string{"Paid Player 1 $10", "Player 2 lost $10", "Player 3 pushed, keeping their bet."}, res.PayoutLines())

	// a player who never stood is not settled
	a.True(e.players[3].IsStillIn())
	_, ok := e.players[3].Earnings()
	a.False(ok)
}

func TestEngine_Score_dealerBusts(t *testing.T) {
	a := assert.New(t)
	e := createTestEngine(t, "13h,12h,5h", "10c,9c", "2c,3c")
	e.players[0].Stand()

	gameOver, res := e.Score()
	a.True(gameOver)
	a.Equal([]string{"dealer busts!", "Game over."}, res.Updates)
	a.Equal([]Payout{{PlayerID: "Player 1", Earnings: 10}}, res.Payouts)
}

func TestEngine_Score_natural(t *testing.T) {
	a := assert.New(t)
	e := createTestEngine(t, "10h,6h", "14c,13c")
	e.dealer.Card(1).Flip()

	gameOver, res := e.Score()
	a.True(gameOver)
	a.Equal([]string{"Player 1 got blackjack!", "Game over."}, res.Updates)
	a.Equal([]string{"Paid Player 1 $15"}, res.PayoutLines())
	a.True(e.IsGameOver())

	// the hole card is shown but not scored
	a.Equal("~ Blackjack ~\n"+
		"Player 1 (21): ♧Ace, ♧King (Out)\n"+
		"Dealer (10): ♡10, ♡6", e.Render())
	a.False(e.dealer.Card(1).IsFaceUp())
}

func TestEngine_Score_inProgress(t *testing.T) {
	a := assert.New(t)
	e := createTestEngine(t, "10h,6h", "10c,5c", "14c,13c")
	e.dealer.Card(1).Flip()

	gameOver, res := e.Score()
	a.False(gameOver)
	a.Equal(1, res.Round)
	a.Equal([]string{"Player 2 got blackjack!"}, res.Updates)
	a.Nil(res.Payouts)
	a.False(e.IsGameOver())

	gameOver, res = e.Score()
	a.False(gameOver)
	a.Equal(2, res.Round)
	a.Empty(res.Updates)
}

func TestEngine_Render(t *testing.T) {
	a := assert.New(t)
	e := createStackedEngine(t, "10h,6h,10c,9c,2d,3d")

	_, players, err := e.Start(2)
	a.NoError(err)
	a.Equal("Not started", e.Render())

	players[0].Stand()
	e.Score()
	a.Equal("~ Blackjack ~\n"+
		"Player 1 (19): ♧10, ♧9 | Standing\n"+
		"Player 2 (5): ♢2, ♢3\n"+
		"Dealer (10): ♡10, ??", e.Render())
}

func TestEngine_fullGame(t *testing.T) {
	a := assert.New(t)

	for seed := int64(1); seed <= 20; seed++ {
		e := NewEngine(logrus.StandardLogger(), Options{Seed: seed})
		_, players, err := e.Start(3)
		a.NoError(err)
		for _, p := range players {
			a.NoError(p.SetBet(10))
		}

		gameOver := false
		for i := 0; i < 20 && !gameOver; i++ {
			gameOver, _ = e.Score()
			if gameOver {
				break
			}

			for _, p := range players {
				if p.Score() >= 15 {
					p.Stand()
				}
			}

			a.NoError(e.Hit())
			a.Equal(52, cardsInPlay(e))
		}

		a.True(gameOver, "seed %d did not finish", seed)
	}
}
