// Package sample generates random symbol probabilities and random messages drawn from them.
// It is meant for exercising coders, not for anything requiring cryptographic randomness.
package sample

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/TylerBloom/furor"
)

// Probabilities assigns a uniformly random probability to each of symbols, normalized to sum to one.
func Probabilities(rng *rand.Rand, symbols []rune) map[rune]float64 {
	weights := make(map[rune]float64, len(symbols))
	var total float64
	for _, s := range symbols {
		if _, ok := weights[s]; ok {
			continue
		}
		// Float64 may return 0, which is not a valid frequency.
		w := 1 - rng.Float64()
		weights[s] = w
		total += w
	}
	for s := range weights {
		weights[s] /= total
	}
	return weights
}

// A Sampler draws symbols at random in proportion to their weights.
type Sampler[S comparable] struct {
	rng        *rand.Rand
	cumulative []float64
	symbols    []S
}

// NewSampler returns a Sampler over freqs.
func NewSampler[S comparable](freqs []furor.Frequency[S], rng *rand.Rand) (*Sampler[S], error) {
	if len(freqs) == 0 {
		return nil, errors.Wrap(furor.ErrConfiguration, "no symbols to sample")
	}
	sp := &Sampler[S]{
		rng:        rng,
		cumulative: make([]float64, 0, len(freqs)),
		symbols:    make([]S, 0, len(freqs)),
	}
	var running float64
	for _, f := range freqs {
		if math.IsNaN(f.Weight) || math.IsInf(f.Weight, 0) || f.Weight <= 0 {
			return nil, errors.Wrapf(furor.ErrInvalidFrequency, "%v: %v", f.Symbol, f.Weight)
		}
		running += f.Weight
		sp.cumulative = append(sp.cumulative, running)
		sp.symbols = append(sp.symbols, f.Symbol)
	}
	return sp, nil
}

// Next returns a random symbol.
func (sp *Sampler[S]) Next() S {
	total := sp.cumulative[len(sp.cumulative)-1]
	r := sp.rng.Float64() * total
	for i, w := range sp.cumulative {
		if w > r {
			return sp.symbols[i]
		}
	}
	// Rounding can leave r at total.
	return sp.symbols[len(sp.symbols)-1]
}

// Take returns n random symbols.
func (sp *Sampler[S]) Take(n int) []S {
	msg := make([]S, n)
	for i := range msg {
		msg[i] = sp.Next()
	}
	return msg
}
