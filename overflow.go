package temporal

import "strconv"

// Overflow selects how a validating constructor treats out-of-range
// component values.
// The zero value is [Constrain].
//
// Overflow governs component regulation only: a value whose regulated
// components still place it outside the supported instant window fails
// with [ErrRange] under either policy.
type Overflow uint8

const (
	// Constrain clamps each out-of-range component to the nearest bound
	// of its valid range.
	Constrain Overflow = iota
	// Reject fails with [ErrRange] if any component is out of range.
	Reject
)

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Overflow policy.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Overflow) String() string {
	switch o {
	case Constrain:
		return "constrain"
	case Reject:
		return "reject"
	}
	return "overflow(" + strconv.Itoa(int(o)) + ")"
}
