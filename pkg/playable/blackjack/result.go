package blackjack

import "fmt"

// Result is what happened during a call to Score()
type Result struct {
	Round    int      `json:"round"`
	GameOver bool     `json:"gameOver"`
	Updates  []string `json:"updates"`
	// Payouts is only populated once the game is over
	Payouts []Payout `json:"payouts,omitempty"`
}

// PayoutLines returns the payouts as text
func (r *Result) PayoutLines() []string {
	lines := make([]string, len(r.Payouts))
	for i, p := range r.Payouts {
		lines[i] = p.String()
	}

	return lines
}

// Payout is the settled earnings of a single hand
type Payout struct {
	PlayerID string `json:"playerId"`
	Earnings int    `json:"earnings"`
}

func (p Payout) String() string {
	switch {
	case p.Earnings < 0:
		return fmt.Sprintf("%s lost $%d", p.PlayerID, -p.Earnings)
	case p.Earnings > 0:
		return fmt.Sprintf("Paid %s $%d", p.PlayerID, p.Earnings)
	default:
		return fmt.Sprintf("%s pushed, keeping their bet.", p.PlayerID)
	}
}
