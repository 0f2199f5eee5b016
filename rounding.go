package temporal

import (
	"fmt"
	"math/big"
	"strconv"
)

// RoundingMode determines how a quantity that falls between two multiples
// of a rounding increment resolves to one of them.
//
// Ceil and floor are directed toward positive and negative infinity,
// expand and trunc away from and toward zero. The half variants round to
// the nearest multiple and use the directed rule only to break ties;
// [RoundHalfEven] breaks ties toward the multiple with an even quotient.
type RoundingMode uint8

const (
	RoundCeil RoundingMode = iota
	RoundFloor
	RoundExpand
	RoundTrunc
	RoundHalfCeil
	RoundHalfFloor
	RoundHalfExpand
	RoundHalfTrunc
	RoundHalfEven
)

var roundingModeNames = [...]string{
	RoundCeil:       "ceil",
	RoundFloor:      "floor",
	RoundExpand:     "expand",
	RoundTrunc:      "trunc",
	RoundHalfCeil:   "halfCeil",
	RoundHalfFloor:  "halfFloor",
	RoundHalfExpand: "halfExpand",
	RoundHalfTrunc:  "halfTrunc",
	RoundHalfEven:   "halfEven",
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the RoundingMode value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return "roundingMode(" + strconv.Itoa(int(m)) + ")"
}

// RoundingIncrement is a positive multiplier applied to a rounding unit.
// Valid increments are 1 through 1e9; the zero value is not a valid
// increment and is rejected wherever it is used.
type RoundingIncrement uint32

const maxRoundingIncrement = 1_000_000_000

// NewRoundingIncrement returns an increment equal to n.
//
// NewRoundingIncrement returns an error if n is not in [1, 1e9].
func NewRoundingIncrement(n int) (RoundingIncrement, error) {
	if n < 1 || n > maxRoundingIncrement {
		return 0, fmt.Errorf("rounding increment %v: %w", n, ErrRange)
	}
	return RoundingIncrement(n), nil
}

// MustNewRoundingIncrement is like [NewRoundingIncrement] but panics if the
// increment cannot be constructed.
// It simplifies safe initialization of global variables holding increments.
func MustNewRoundingIncrement(n int) RoundingIncrement {
	inc, err := NewRoundingIncrement(n)
	if err != nil {
		panic(fmt.Sprintf("NewRoundingIncrement(%v) failed: %v", n, err))
	}
	return inc
}

// roundToIncrement rounds quantity to a multiple of increment under the
// given mode. The increment must be positive. The computation stays in
// arbitrary-precision integers; no step loses precision regardless of
// the magnitude of quantity.
func roundToIncrement(quantity, increment *big.Int, mode RoundingMode) (*big.Int, error) {
	q, r := new(big.Int).QuoRem(quantity, increment, new(big.Int))
	if r.Sign() == 0 {
		return new(big.Int).Mul(q, increment), nil
	}

	// lowQ is the quotient of the nearest multiple toward negative
	// infinity; the high multiple is one increment above it.
	lowQ := new(big.Int).Set(q)
	if r.Sign() < 0 {
		lowQ.Sub(lowQ, oneBig)
	}
	highQ := new(big.Int).Add(lowQ, oneBig)

	var pick *big.Int
	switch mode {
	case RoundCeil:
		pick = highQ
	case RoundFloor:
		pick = lowQ
	case RoundTrunc:
		if quantity.Sign() < 0 {
			pick = highQ
		} else {
			pick = lowQ
		}
	case RoundExpand:
		if quantity.Sign() < 0 {
			pick = lowQ
		} else {
			pick = highQ
		}
	case RoundHalfCeil, RoundHalfFloor, RoundHalfExpand, RoundHalfTrunc, RoundHalfEven:
		// rem is the distance above the low multiple, in (0, increment).
		rem := new(big.Int).Set(r)
		if rem.Sign() < 0 {
			rem.Add(rem, increment)
		}
		switch new(big.Int).Lsh(rem, 1).Cmp(increment) {
		case -1:
			pick = lowQ
		case +1:
			pick = highQ
		default:
			switch mode {
			case RoundHalfCeil:
				pick = highQ
			case RoundHalfFloor:
				pick = lowQ
			case RoundHalfExpand:
				if quantity.Sign() < 0 {
					pick = lowQ
				} else {
					pick = highQ
				}
			case RoundHalfTrunc:
				if quantity.Sign() < 0 {
					pick = highQ
				} else {
					pick = lowQ
				}
			default:
				if lowQ.Bit(0) == 0 {
					pick = lowQ
				} else {
					pick = highQ
				}
			}
		}
	default:
		return nil, fmt.Errorf("rounding mode %v: %w", mode, ErrRange)
	}
	return pick.Mul(pick, increment), nil
}

var oneBig = big.NewInt(1)
