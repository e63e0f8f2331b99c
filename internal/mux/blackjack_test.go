package mux

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_postBlackjackScore(t *testing.T) {
	ts, _ := newTestServer(t)

	test := func(t *testing.T, cards string, score int, bust bool) {
		t.Helper()

		var res blackjackScoreResponse
		assertPost(t, ts, "/blackjack/score", postBlackjackScorePayload{Cards: cards}, &res, http.StatusOK)
		assert.Equal(t, score, res.Score, cards)
		assert.Equal(t, bust, res.Bust, cards)
	}

	test(t, "14s,13h", 21, false)
	test(t, "14c,14d", 12, false)
	test(t, "13c,12c,2c", 22, true)
	test(t, "", 0, false)
}

func TestMux_postBlackjackScore_badRequest(t *testing.T) {
	a := assert.New(t)
	ts, _ := newTestServer(t)

	var errObj errorResponse
	assertPost(t, ts, "/blackjack/score", postBlackjackScorePayload{Cards: "15s"}, &errObj, http.StatusBadRequest)
	a.Contains(errObj.Message, "unknown card")

	assertPost(t, ts, "/blackjack/score", postBlackjackScorePayload{Cards: "14s,14s"}, &errObj, http.StatusBadRequest)
	a.Contains(errObj.Message, "not in the deck")

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/blackjack/score", strings.NewReader(`{"cards":"14s"}`))
	req.Header.Set("Content-Type", "text/plain")
	assertDo(t, req, &errObj, http.StatusUnsupportedMediaType)
}
