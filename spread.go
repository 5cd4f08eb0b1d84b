package furor

import (
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// A Frequency is the relative frequency of a symbol.
// Weights need not sum to one.
type Frequency[S comparable] struct {
	Symbol S
	Weight float64
}

// Spread returns a labeling of the given length in which each symbol occurs roughly in proportion to its weight.
//
// Symbols are interleaved greedily: every symbol advances a threshold by total/weight each time it is emitted,
// and the symbol with the smallest threshold is emitted next, ties going to the symbol listed first in freqs.
// Symbols that are too rare to be emitted within the length are appended once at the end,
// so that every symbol occurs in the labeling at least once.
func Spread[S comparable](freqs []Frequency[S], length int) ([]S, error) {
	if length < len(freqs) {
		return nil, errors.Wrapf(ErrConfiguration, "length %d is smaller than the number of symbols %d", length, len(freqs))
	}
	if len(freqs) == 0 {
		if length > 0 {
			return nil, errors.Wrapf(ErrConfiguration, "no symbols to spread over length %d", length)
		}
		return []S{}, nil
	}

	var total float64
	seen := make(map[S]bool, len(freqs))
	for _, f := range freqs {
		if math.IsNaN(f.Weight) || math.IsInf(f.Weight, 0) || f.Weight <= 0 {
			return nil, errors.Wrapf(ErrInvalidFrequency, "%v: %v", f.Symbol, f.Weight)
		}
		if seen[f.Symbol] {
			return nil, errors.Wrapf(ErrConfiguration, "duplicate symbol %v", f.Symbol)
		}
		seen[f.Symbol] = true
		total += f.Weight
	}
	if math.IsInf(total, 0) {
		return nil, errors.Wrapf(ErrInvalidFrequency, "total weight overflows")
	}

	period := make([]float64, len(freqs))
	threshold := make([]float64, len(freqs))
	for i, f := range freqs {
		period[i] = total / f.Weight
		threshold[i] = period[i]
	}

	emitted := make([]bool, len(freqs))
	unseen := len(freqs)
	labeling := make([]S, 0, length)
	for len(labeling) < length-unseen {
		next := 0
		for i := 1; i < len(threshold); i++ {
			if threshold[i] < threshold[next] {
				next = i
			}
		}

		labeling = append(labeling, freqs[next].Symbol)
		if !emitted[next] {
			emitted[next] = true
			unseen--
		}
		threshold[next] += period[next]
	}

	for i, f := range freqs {
		if !emitted[i] {
			labeling = append(labeling, f.Symbol)
		}
	}
	return labeling, nil
}

// SpreadMap is Spread for a map of weights.
// Symbols are taken in ascending order, which makes the result independent of map iteration order.
func SpreadMap[S cmp.Ordered](weights map[S]float64, length int) ([]S, error) {
	symbols := make([]S, 0, len(weights))
	for s := range weights {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	freqs := make([]Frequency[S], 0, len(symbols))
	for _, s := range symbols {
		freqs = append(freqs, Frequency[S]{Symbol: s, Weight: weights[s]})
	}
	return Spread(freqs, length)
}
