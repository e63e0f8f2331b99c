package blackjack

// Options are options for creating a new blackjack table
type Options struct {
	// Seed shuffles the deck reproducibly when > 0
	Seed int64
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Seed: 0,
	}
}
