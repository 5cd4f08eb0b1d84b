package furor

import (
	"github.com/pkg/errors"
)

var (
	// ErrConfiguration is returned when a labeling, its length, or the set of symbols it is built from cannot form a working coder.
	ErrConfiguration = errors.New("invalid coder configuration")

	// ErrInvalidFrequency is returned when a symbol frequency is not a positive finite number.
	ErrInvalidFrequency = errors.New("invalid symbol frequency")

	// ErrUnknownSymbol is returned when a symbol does not occur in the coder's labeling.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidState is returned when a state is nil or negative.
	ErrInvalidState = errors.New("invalid state")

	// ErrMalformedState is returned by Decode when a state does not unwind towards the initial state.
	ErrMalformedState = errors.New("malformed state")

	// ErrUnrepresentable is returned by Encode when a symbol would leave the state at or below the initial state,
	// in which case Decode could not recover it.
	ErrUnrepresentable = errors.New("message not representable with this initial state")
)
