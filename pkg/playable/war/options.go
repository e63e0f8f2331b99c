package war

// DefaultMaxRounds is the round limit that guards against endless tie cascades
const DefaultMaxRounds = 100_000

// Options are options for creating a new game of War
type Options struct {
	// MaxRounds is the number of decided rounds allowed before the game is abandoned
	MaxRounds int
	// Seed shuffles the deck reproducibly when > 0
	Seed int64
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		MaxRounds: DefaultMaxRounds,
		Seed:      0,
	}
}
