package mux

import (
	"net/http"

	"cardtable/internal/config"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
	logger  logrus.FieldLogger
}

type muxConfig struct {
	// warMaxRounds is the round guard used when a request does not set one
	warMaxRounds int
}

// NewMux returns a new HTTP mux
func NewMux(version string, logger logrus.FieldLogger) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		logger:  logger,
		config: muxConfig{
			warMaxRounds: config.Instance().War.MaxRounds,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/war").Handler(this.postWar())
	r.Methods(http.MethodGet).Path("/war/ws").Handler(this.getWarWS())
	r.Methods(http.MethodPost).Path("/blackjack/score").Handler(this.postBlackjackScore())

	return this
}
