package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"fmt"

	"cardtable/internal/rng"
)

// Size is the number of cards in a standard deck
const Size = RankCount * SuitCount

// CardID is a handle to a card held in a deck's arena
// A CardID is only meaningful for the deck that issued it.
type CardID int

// Deck represents a playing deck
// The deck owns all 52 cards. The cards still in the deck and in every hand
// dealt from it are tracked as ordered CardID slices; the last element is the top.
type Deck struct {
	arena    []Card
	order    []CardID
	rng      rng.Generator
	seed     int64
	shuffled bool
}

type options struct {
	shuffle bool
	rng     rng.Generator
	seed    int64
	factory CardFactory
}

// Option configures a new deck
type Option func(*options)

// WithoutShuffle leaves the deck in construction order
func WithoutShuffle() Option {
	return func(o *options) {
		o.shuffle = false
	}
}

// WithGenerator sets the random source used for shuffling
func WithGenerator(g rng.Generator) Option {
	return func(o *options) {
		o.rng = g
	}
}

// WithSeed uses a reproducible random source
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = rng.Seeded(seed)
	}
}

// WithCardFactory overrides how each card is created
func WithCardFactory(f CardFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// New returns a new deck of 52 cards, one of each rank and suit.
// Cards are built suit by suit from 2 through Ace, and the deck is shuffled
// unless WithoutShuffle() is given.
func New(opts ...Option) *Deck {
	o := options{
		shuffle: true,
		rng:     rng.Crypto{},
		seed:    -1,
		factory: StandardCard,
	}

	for _, opt := range opts {
		opt(&o)
	}

	d := &Deck{
		arena: make([]Card, 0, Size),
		order: make([]CardID, 0, Size),
		rng:   o.rng,
		seed:  o.seed,
	}

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.order = append(d.order, CardID(len(d.arena)))
			d.arena = append(d.arena, o.factory(rank, suit))
		}
	}

	if o.shuffle {
		d.Shuffle()
	}

	return d
}

// GetSeed returns the seed used for shuffling, or -1 if the deck was not seeded
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// IsShuffled returns true if the deck has been shuffled at least once
func (d *Deck) IsShuffled() bool {
	return d.shuffled
}

// Card returns the card for the handle
func (d *Deck) Card(id CardID) *Card {
	if id < 0 || int(id) >= len(d.arena) {
		panic(fmt.Sprintf("card id %d is not from this deck", id))
	}

	return &d.arena[id]
}

// Cards returns the cards still in the deck, bottom first
func (d *Deck) Cards() []*Card {
	return d.cardsFor(d.order)
}

func (d *Deck) cardsFor(ids []CardID) []*Card {
	cards := make([]*Card, len(ids))
	for i, id := range ids {
		cards[i] = d.Card(id)
	}

	return cards
}

// Shuffle will shuffle the cards still in the deck
func (d *Deck) Shuffle() {
	for j := len(d.order) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.order[i], d.order[j] = d.order[j], d.order[i]
	}

	d.shuffled = true
}

// Draw removes and returns the top card
// If there are no more cards, ErrEmptyDeck is returned.
func (d *Deck) Draw() (CardID, error) {
	n := len(d.order)
	if n == 0 {
		return -1, ErrEmptyDeck
	}

	id := d.order[n-1]
	d.order = d.order[:n-1]

	return id, nil
}

// ShuffleIn adds a card to the deck, then shuffles it
func (d *Deck) ShuffleIn(id CardID) {
	d.PlaceTop(id)
	d.Shuffle()
}

// PlaceTop adds a card to the top of the deck
func (d *Deck) PlaceTop(id CardID) {
	d.order = append(d.order, id)
}

// PlaceBottom adds a card to the bottom of the deck
func (d *Deck) PlaceBottom(id CardID) {
	d.order = append([]CardID{id}, d.order...)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.order) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.order)
}

// Hand creates a Hand from this deck with n cards
func (d *Deck) Hand(n int) (*Hand, error) {
	if !d.CanDraw(n) {
		return nil, fmt.Errorf("cannot deal %d cards with %d left: %w", n, d.CardsLeft(), ErrEmptyDeck)
	}

	h := &Hand{deck: d}
	for i := 0; i < n; i++ {
		if err := h.Hit(); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// DealHand creates a hand of n cards and wraps it in a game-specific hand type
func DealHand[H any](d *Deck, n int, wrap func(*Hand) H) (H, error) {
	h, err := d.Hand(n)
	if err != nil {
		var zero H
		return zero, err
	}

	return wrap(h), nil
}

// HandWith takes the named cards out of the deck and returns them as a hand.
// The first card is the bottom of the hand and the last card is the top.
func (d *Deck) HandWith(cards ...Card) (*Hand, error) {
	ids, err := d.take(cards)
	if err != nil {
		return nil, err
	}

	return &Hand{deck: d, cards: ids}, nil
}

// Stack moves the named cards to the top of the deck so they are drawn in the order given
func (d *Deck) Stack(cards ...Card) error {
	ids, err := d.take(cards)
	if err != nil {
		return err
	}

	for i := len(ids) - 1; i >= 0; i-- {
		d.PlaceTop(ids[i])
	}

	return nil
}

// take removes the matching cards from the deck
// Nothing is removed unless every card is found.
func (d *Deck) take(cards []Card) ([]CardID, error) {
	remaining := make([]CardID, len(d.order))
	copy(remaining, d.order)

	ids := make([]CardID, len(cards))
	for i := range cards {
		pos := -1
		for j, id := range remaining {
			if d.arena[id].Equal(&cards[i]) {
				pos = j
				break
			}
		}

		if pos < 0 {
			return nil, fmt.Errorf("%w: %s is not in the deck", ErrUnknownCard, cards[i].Face())
		}

		ids[i] = remaining[pos]
		remaining = append(remaining[:pos], remaining[pos+1:]...)
	}

	d.order = remaining
	return ids, nil
}

// HashCode returns a SHA1 hash code of the cards left in the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, id := range d.order {
		_, _ = hash.Write([]byte(d.arena[id].Face()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

func (d *Deck) String() string {
	return CardsToString(d.Cards())
}
