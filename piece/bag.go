package piece

import "math/rand/v2"

// Bag deals pieces using a shuffled-bag policy: every refill pushes the whole
// catalog in random order, so each piece appears exactly once per cycle.
type Bag struct {
	catalog []Piece
	bag     []Piece
	rng     *rand.Rand
	cycles  int
}

// BagOption configures a Bag.
type BagOption func(*Bag)

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) BagOption {
	return func(b *Bag) {
		b.rng = rng
	}
}

// NewBag creates a bag over the given catalog and performs the first refill.
// It panics if the catalog is empty.
func NewBag(catalog []Piece, opts ...BagOption) *Bag {
	if len(catalog) == 0 {
		panic("piece: cannot create bag from an empty catalog")
	}

	b := &Bag{
		catalog: append([]Piece(nil), catalog...),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b.refill()
	return b
}

func (b *Bag) refill() {
	deal := append([]Piece(nil), b.catalog...)
	b.rng.Shuffle(len(deal), func(i, j int) {
		deal[i], deal[j] = deal[j], deal[i]
	})
	b.bag = append(b.bag, deal...)
	b.cycles++
}

// Next pops the next piece, refilling first when the bag is empty.
func (b *Bag) Next() Piece {
	if len(b.bag) == 0 {
		b.refill()
	}
	p := b.bag[len(b.bag)-1]
	b.bag = b.bag[:len(b.bag)-1]
	return p
}

// Remaining returns how many pieces are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.bag)
}

// Cycles returns how many times the bag has been filled.
func (b *Bag) Cycles() int {
	return b.cycles
}

// Peek returns the upcoming pieces, next first.
func (b *Bag) Peek() []Piece {
	out := make([]Piece, len(b.bag))
	for i := range b.bag {
		out[i] = b.bag[len(b.bag)-1-i]
	}
	return out
}
