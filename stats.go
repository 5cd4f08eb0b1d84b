package furor

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// InformationContent returns the number of bits of information in msg, -sum(log2(p(s))), under the probabilities probs.
// This is the lower bound on the code length achievable by any coder given probs.
func InformationContent[S comparable](msg []S, probs map[S]float64) (float64, error) {
	var bits float64
	for i, s := range msg {
		p, ok := probs[s]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownSymbol, "%v at position %d", s, i)
		}
		if math.IsNaN(p) || p <= 0 || p > 1 {
			return 0, errors.Wrapf(ErrInvalidFrequency, "%v: %v", s, p)
		}
		bits -= math.Log2(p)
	}
	return bits, nil
}

// CodeLength returns the number of bits needed to write state, not counting leading zeros.
func CodeLength(state *big.Int) int {
	return state.BitLen()
}

// LabelingProbabilities returns the share of the labeling taken by each symbol, in order of first occurrence.
func LabelingProbabilities[S comparable](labeling []S) []Frequency[S] {
	idx := NewIndex(labeling)
	symbols := idx.Symbols()
	probs := make([]Frequency[S], 0, len(symbols))
	for _, s := range symbols {
		probs = append(probs, Frequency[S]{Symbol: s, Weight: float64(idx.Count(s)) / float64(len(labeling))})
	}
	return probs
}
