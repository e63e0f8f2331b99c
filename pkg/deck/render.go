package deck

import "strings"

// Render returns the hand as display text, e.g. "♧2, ♡Ace, ??"
// Face-down cards are shown as ?? unless reveal is true. Rendering never changes a card's face state.
func Render(h *Hand, reveal bool) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		if reveal {
			parts[i] = c.Face()
		} else {
			parts[i] = c.String()
		}
	}

	return strings.Join(parts, ", ")
}
