package mux

import (
	"net/http"

	"cardtable/pkg/deck"
	"cardtable/pkg/playable/blackjack"
)

type postBlackjackScorePayload struct {
	Cards string `json:"cards"`
}

type blackjackScoreResponse struct {
	Score int  `json:"score"`
	Bust  bool `json:"bust"`
}

func (m *Mux) postBlackjackScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postBlackjackScorePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		cards, err := deck.CardsFromString(pp.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		score, err := blackjack.ScoreCards(cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, blackjackScoreResponse{
			Score: score,
			Bust:  score > blackjack.BlackjackScore,
		})
	}
}
