package mux

import (
	"errors"
	"net/http"

	"cardtable/pkg/playable/war"
)

type postWarPayload struct {
	Seed      int64 `json:"seed"`
	MaxRounds int   `json:"maxRounds"`
}

func (m *Mux) warOptions(seed int64, maxRounds int) war.Options {
	opts := war.DefaultOptions()
	opts.Seed = seed
	opts.MaxRounds = m.config.warMaxRounds
	if maxRounds > 0 {
		opts.MaxRounds = maxRounds
	}

	return opts
}

func (m *Mux) postWar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postWarPayload
		if r.ContentLength != 0 && !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Seed < 0 || pp.MaxRounds < 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("seed and maxRounds cannot be less than zero"))
			return
		}

		g, err := war.NewGame(m.logger, m.warOptions(pp.Seed, pp.MaxRounds))
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		res, err := g.Start()
		if err != nil {
			if errors.Is(err, war.ErrTooManyRounds) {
				writeJSONError(w, http.StatusUnprocessableEntity, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
