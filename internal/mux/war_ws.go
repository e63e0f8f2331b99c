package mux

import (
	"net/http"
	"time"

	"cardtable/pkg/playable/war"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10

// warMessage is a single message on the war round feed
type warMessage struct {
	Type    string           `json:"type"`
	Round   *war.RoundResult `json:"round,omitempty"`
	Result  *war.Result      `json:"result,omitempty"`
	Message string           `json:"message,omitempty"`
}

func (m *Mux) getWarWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		seed, err := parseOptionalInt(r, "seed")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		maxRounds, err := parseOptionalInt(r, "maxRounds")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		g, err := war.NewGame(m.logger, m.warOptions(seed, int(maxRounds)))
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			m.logger.WithError(err).Error("could not upgrade connection")
			return
		}
		defer conn.Close()

		log := m.logger.WithField("game", g.ID)
		if err := m.streamWar(conn, g); err != nil {
			log.WithError(err).Error("could not write message")
			return
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"))
	}
}

// streamWar plays the game, writing every decided round and then the final result
// A game that cannot finish ends the feed with an error message.
func (m *Mux) streamWar(conn *websocket.Conn, g *war.Game) error {
	send := func(msg warMessage) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg)
	}

	for !g.IsOver() {
		round, err := g.PlayRound()
		if err != nil {
			return send(warMessage{Type: "error", Message: err.Error()})
		}

		if err := send(warMessage{Type: "round", Round: round}); err != nil {
			return err
		}
	}

	res, err := g.Start()
	if err != nil {
		return send(warMessage{Type: "error", Message: err.Error()})
	}

	m.logger.WithFields(logrus.Fields{
		"game":   res.GameID,
		"rounds": res.Rounds,
	}).Debug("streamed war game")

	return send(warMessage{Type: "result", Result: res})
}
