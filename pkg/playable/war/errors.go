package war

import "errors"

// ErrTooManyRounds is returned once a game reaches its round limit
// The game cannot be continued afterwards.
var ErrTooManyRounds = errors.New("game went on too long")

// ErrGameIsOver is an error when a round is played after one player ran out of cards
var ErrGameIsOver = errors.New("game is over")
