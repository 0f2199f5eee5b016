package temporal

import (
	"errors"
	"fmt"
	"strconv"
)

// Unit represents a calendar or clock unit of a date-time value, from
// [Year] down to [Nanosecond].
//
// Units order from coarse to fine; the "largest unit" of a difference
// decomposition is the coarsest unit the result may contain, with finer
// units absorbing the remainder.
type Unit uint8

const (
	Year Unit = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
)

var errInvalidUnit = errors.New("invalid unit")

var unitNames = [...]string{
	Year:        "year",
	Month:       "month",
	Week:        "week",
	Day:         "day",
	Hour:        "hour",
	Minute:      "minute",
	Second:      "second",
	Millisecond: "millisecond",
	Microsecond: "microsecond",
	Nanosecond:  "nanosecond",
}

var unitLookup = map[string]Unit{
	"year":        Year,
	"month":       Month,
	"week":        Week,
	"day":         Day,
	"hour":        Hour,
	"minute":      Minute,
	"second":      Second,
	"millisecond": Millisecond,
	"microsecond": Microsecond,
	"nanosecond":  Nanosecond,
}

// ParseUnit converts a string to a unit.
// The input must be a singular lowercase unit name, such as "month" or
// "nanosecond".
//
// ParseUnit returns an error if the string does not represent a valid unit.
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[unit]
	if !ok {
		return Year, errInvalidUnit
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Unit value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unit(" + strconv.Itoa(int(u)) + ")"
}

// IsDateUnit returns true for [Year], [Month], [Week], and [Day].
func (u Unit) IsDateUnit() bool {
	return u <= Day
}

// IsTimeUnit returns true for [Hour] and finer units.
func (u Unit) IsTimeUnit() bool {
	return u >= Hour && u <= Nanosecond
}

// Nanoseconds returns the fixed nanosecond width of one unit.
// Calendar units ([Year], [Month], [Week]) have no fixed width, and false
// is returned for them and for invalid units.
// The width of [Day] is its standard 24-hour length; operations that take
// an explicit day length override it.
func (u Unit) Nanoseconds() (width int64, ok bool) {
	switch u {
	case Day:
		return nsPerDay, true
	case Hour:
		return nsPerHour, true
	case Minute:
		return nsPerMinute, true
	case Second:
		return nsPerSecond, true
	case Millisecond:
		return nsPerMillisecond, true
	case Microsecond:
		return nsPerMicrosecond, true
	case Nanosecond:
		return 1, true
	default:
		return 0, false
	}
}
