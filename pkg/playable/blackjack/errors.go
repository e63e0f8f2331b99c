package blackjack

import "errors"

// ErrGameNotStarted is an error when an action is attempted before Start()
var ErrGameNotStarted = errors.New("game has not started")

// ErrGameStarted is an error when Start() is called twice
var ErrGameStarted = errors.New("game has already started")

// ErrGameIsOver is an error when an action is attempted on an ended game
var ErrGameIsOver = errors.New("game is over")

// ErrNegativeBet is an error when a bet below zero is placed
var ErrNegativeBet = errors.New("bet cannot be negative")
