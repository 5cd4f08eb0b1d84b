// Package furor implements an Asymmetric Numeral System (ANS) entropy coder whose state is an arbitrary-precision integer.
// Symbol frequencies are approximated by a labeling, a fixed sequence of symbols whose length is the block size of the coder.
// The block size need not be a power of two, and since the state never has to be renormalized into a fixed width register,
// a whole message is encoded into a single integer from which it can be exactly recovered.
//
// Below is an example of encoding a message with a labeling spread from symbol frequencies:
//    labeling, _ := furor.SpreadMap(map[rune]float64{'a': 0.6, 'b': 0.3, 'c': 0.1}, 32)
//    coder, _ := furor.New(labeling)
//    state, _ := furor.EncodeString(coder, "abacabb")
//    msg, _ := furor.DecodeString(coder, state)
//
// The encode and decode steps are the functions C and D of the labeled-number formulation of ANS.
// Reference:
// J. Duda, Asymmetric numeral systems: entropy coding combining speed of Huffman coding with compression rate of arithmetic coding, arXiv:1311.2540.
package furor

import (
	"math/big"

	"github.com/pkg/errors"
)

var bigOne = big.NewInt(1)

// An Option configures a Coder.
type Option func(*options)

type options struct {
	initialState *big.Int
}

// WithInitialState overrides the initial state derived from the labeling.
// Encoding starts from n and decoding stops once the state falls to n or below.
// A negative n is rejected by New.
func WithInitialState(n *big.Int) Option {
	return func(o *options) {
		o.initialState = n
	}
}

// A Coder encodes sequences of symbols into a single non-negative integer, and decodes them back.
// A Coder is immutable and safe for concurrent use.
type Coder[S comparable] struct {
	labeling     []S
	index        *Index[S]
	blockSize    *big.Int
	initialState *big.Int
}

// New returns a Coder whose block is labeling.
// Every symbol that is to be encoded must occur in labeling at least once.
func New[S comparable](labeling []S, opts ...Option) (*Coder[S], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	initial := big.NewInt(int64(InitialState(labeling)))
	if o.initialState != nil {
		if o.initialState.Sign() < 0 {
			return nil, errors.Wrapf(ErrConfiguration, "negative initial state %s", o.initialState)
		}
		initial = new(big.Int).Set(o.initialState)
	}

	c := &Coder[S]{
		labeling:     append([]S(nil), labeling...),
		index:        NewIndex(labeling),
		blockSize:    big.NewInt(int64(len(labeling))),
		initialState: initial,
	}
	return c, nil
}

// InitialState returns the initial state of a coder built on labeling.
// It is 0 for an empty labeling, 1 for a labeling of one symbol,
// and otherwise the number of consecutive repetitions of the first symbol in labeling[1:].
func InitialState[S comparable](labeling []S) int {
	switch len(labeling) {
	case 0:
		return 0
	case 1:
		return 1
	}
	n := 0
	for _, s := range labeling[1:] {
		if s != labeling[0] {
			break
		}
		n++
	}
	return n
}

// LeadingRun returns the length of the run of labeling[0] at the start of labeling.
// Used as an initial state, it lets every message round trip as long as labeling contains two distinct symbols.
func LeadingRun[S comparable](labeling []S) int {
	n := 0
	for _, s := range labeling {
		if s != labeling[0] {
			break
		}
		n++
	}
	return n
}

// Labeling returns a copy of the labeling of the coder.
func (c *Coder[S]) Labeling() []S {
	return append([]S(nil), c.labeling...)
}

// BlockSize returns the length of the labeling.
func (c *Coder[S]) BlockSize() int {
	return len(c.labeling)
}

// InitialState returns a copy of the state encoding starts from.
func (c *Coder[S]) InitialState() *big.Int {
	return new(big.Int).Set(c.initialState)
}

// Index returns the frequency tables of the labeling.
func (c *Coder[S]) Index() *Index[S] {
	return c.index
}

// EncodeStep returns the position of the (state+1)-th occurrence of symbol in the infinite repetition of the labeling.
// This is the state after pushing symbol onto state, and it is never smaller than state.
func (c *Coder[S]) EncodeStep(state *big.Int, symbol S) (*big.Int, error) {
	if err := checkState(state); err != nil {
		return nil, err
	}
	count, ok := c.index.count[symbol]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSymbol, "%v", symbol)
	}

	statePlusOne := new(big.Int).Add(state, bigOne)
	fullBlocks, rem := new(big.Int).DivMod(statePlusOne, big.NewInt(int64(count)), new(big.Int))
	symbolsLeft := int(rem.Int64())

	// An exact multiple refers to the last occurrence in the previous block,
	// not to the first occurrence in the next one.
	if symbolsLeft == 0 {
		fullBlocks.Sub(fullBlocks, bigOne)
		symbolsLeft = count
	}

	indexWithinBlock := c.index.positions[symbol][symbolsLeft-1]
	fullBlocks.Mul(fullBlocks, c.blockSize)
	return fullBlocks.Add(fullBlocks, big.NewInt(int64(indexWithinBlock))), nil
}

// DecodeStep inverts EncodeStep.
// It returns the symbol labeling state, and the number of states less than state that carry the same label.
func (c *Coder[S]) DecodeStep(state *big.Int) (S, *big.Int, error) {
	var zero S
	if err := checkState(state); err != nil {
		return zero, nil, err
	}
	if len(c.labeling) == 0 {
		return zero, nil, errors.Wrap(ErrConfiguration, "empty labeling")
	}

	numPreviousBlocks, rem := new(big.Int).DivMod(state, c.blockSize, new(big.Int))
	indexWithinBlock := int(rem.Int64())
	symbol := c.labeling[indexWithinBlock]

	prev := numPreviousBlocks.Mul(numPreviousBlocks, big.NewInt(int64(c.index.count[symbol])))
	prev.Add(prev, big.NewInt(int64(c.index.rank[indexWithinBlock])))
	return symbol, prev, nil
}

// Encode encodes msg into a single state.
// The symbols are pushed from last to first, so that Decode yields them in their original order.
//
// ErrUnrepresentable is returned if a symbol leaves the state at or below the initial state,
// which with the default initial state happens exactly when msg ends with the first symbol of the labeling.
func (c *Coder[S]) Encode(msg []S) (*big.Int, error) {
	if len(msg) > 0 && len(c.labeling) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "encoding with an empty labeling")
	}

	state := new(big.Int).Set(c.initialState)
	for i := len(msg) - 1; i >= 0; i-- {
		next, err := c.EncodeStep(state, msg[i])
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		if next.Cmp(c.initialState) <= 0 {
			return nil, errors.Wrapf(ErrUnrepresentable, "symbol %v at position %d", msg[i], i)
		}
		state = next
	}
	return state, nil
}

// Decode recovers the message encoded in state.
// Decoding stops as soon as the state is no larger than the initial state.
// ErrMalformedState is returned if state cannot be unwound to the initial state.
func (c *Coder[S]) Decode(state *big.Int) ([]S, error) {
	if err := checkState(state); err != nil {
		return nil, err
	}

	msg := []S{}
	for state.Cmp(c.initialState) > 0 {
		symbol, prev, err := c.DecodeStep(state)
		if err != nil {
			return nil, errors.Wrapf(err, "after %d symbols", len(msg))
		}
		if prev.Cmp(state) >= 0 {
			return nil, errors.Wrapf(ErrMalformedState, "state %s does not decrease after %d symbols", state, len(msg))
		}
		msg = append(msg, symbol)
		state = prev
	}
	return msg, nil
}

// EncodeString encodes the runes of s.
func EncodeString(c *Coder[rune], s string) (*big.Int, error) {
	return c.Encode([]rune(s))
}

// DecodeString decodes state into a string.
func DecodeString(c *Coder[rune], state *big.Int) (string, error) {
	msg, err := c.Decode(state)
	if err != nil {
		return "", err
	}
	return string(msg), nil
}

func checkState(state *big.Int) error {
	if state == nil {
		return errors.Wrap(ErrInvalidState, "nil")
	}
	if state.Sign() < 0 {
		return errors.Wrapf(ErrInvalidState, "negative state %s", state)
	}
	return nil
}
