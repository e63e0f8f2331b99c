package blackjack

import (
	"fmt"
	"strings"

	"cardtable/pkg/deck"
)

// Render returns a text view of the table
// Once the game is over, face-down cards are shown.
func (e *Engine) Render() string {
	if e.rounds == 0 || e.dealer == nil {
		return "Not started"
	}

	lines := []string{"~ Blackjack ~"}
	for _, p := range e.players {
		line := e.renderHand(p)
		if !p.stillIn {
			line += " (Out)"
		} else if p.standing {
			line += " | Standing"
		}

		lines = append(lines, line)
	}

	line := e.renderHand(e.dealer)
	if e.dealer.standing {
		line += " | Standing"
	}

	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func (e *Engine) renderHand(h *Hand) string {
	return fmt.Sprintf("%s (%d): %s", h.PlayerID, h.Score(), deck.Render(h.Hand, e.over))
}
