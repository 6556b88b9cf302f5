// Package palette generates reproducible colours for painting segments.
package palette

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSeed seeds the generator when the caller has no preference.
const DefaultSeed int64 = 42

const white = 255

// Pastel is a seeded source of light, washed-out colours. Each channel is
// drawn uniformly from [0, 255] and then averaged with white, so every
// channel lands in [127, 255].
//
// Two Pastels created with the same seed produce the same sequence.
// A Pastel is not safe for concurrent use.
type Pastel struct {
	rng *rand.Rand
}

// NewPastel returns a generator seeded with seed.
func NewPastel(seed int64) *Pastel {
	return &Pastel{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next colour in the sequence.
func (p *Pastel) Next() colorful.Color {
	r := p.channel()
	g := p.channel()
	b := p.channel()
	return colorful.Color{
		R: float64(r) / white,
		G: float64(g) / white,
		B: float64(b) / white,
	}
}

func (p *Pastel) channel() int {
	return (p.rng.Intn(white+1) + white) / 2
}
