package war

import (
	"cardtable/pkg/deck"
)

// Player is one side of a game of War
type Player struct {
	Name string
	hand *deck.Hand

	// spoils of war, cards collected in the current round
	spoils []deck.CardID
}

func newPlayer(name string, hand *deck.Hand) *Player {
	return &Player{
		Name: name,
		hand: hand,
	}
}

// Remaining returns the number of cards the player holds
func (p *Player) Remaining() int {
	return p.hand.Remaining()
}

// Hand returns the player's hand
func (p *Player) Hand() *deck.Hand {
	return p.hand
}

// collect takes the bounty and folds it into the bottom of the hand
func (p *Player) collect(bounty []deck.CardID) {
	p.spoils = append(p.spoils, bounty...)
	p.hand.PlaceBottom(p.spoils...)
	p.spoils = nil
}
