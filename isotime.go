package temporal

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// IsoTime type represents a time of day as a sub-day offset with
// nanosecond precision. It has no date, day-of-week, or time zone
// meaning of its own.
// Its zero value is midnight.
// IsoTime is designed to be safe for concurrent use by multiple goroutines.
type IsoTime struct {
	hour        uint8  // 0..23
	minute      uint8  // 0..59
	second      uint8  // 0..59
	millisecond uint16 // 0..999
	microsecond uint16 // 0..999
	nanosecond  uint16 // 0..999
}

// newIsoTimeUnsafe creates a new time without checking the fields.
// The caller guarantees that every field already fits its range.
func newIsoTimeUnsafe(hour, minute, second, millisecond, microsecond, nanosecond int64) IsoTime {
	return IsoTime{
		hour:        uint8(hour),
		minute:      uint8(minute),
		second:      uint8(second),
		millisecond: uint16(millisecond),
		microsecond: uint16(microsecond),
		nanosecond:  uint16(nanosecond),
	}
}

// NewIsoTime returns a time of day with the given hour, minute, second,
// millisecond, microsecond, and nanosecond. Out-of-range fields are
// regulated under the given overflow policy: [Constrain] clamps each
// field independently into its own range without cross-field carry,
// [Reject] fails if any field is out of range.
// To carry excess instead of clamping, use [BalanceIsoTime].
func NewIsoTime(hour, minute, second, millisecond, microsecond, nanosecond int, overflow Overflow) (IsoTime, error) {
	t, err := newIsoTime(int64(hour), int64(minute), int64(second), int64(millisecond), int64(microsecond), int64(nanosecond), overflow)
	if err != nil {
		return IsoTime{}, fmt.Errorf("constructing time from (%v, %v, %v, %v, %v, %v): %w",
			hour, minute, second, millisecond, microsecond, nanosecond, err)
	}
	return t, nil
}

func newIsoTime(hour, minute, second, millisecond, microsecond, nanosecond int64, overflow Overflow) (IsoTime, error) {
	switch overflow {
	case Constrain:
		hour = clampInt64(hour, 0, 23)
		minute = clampInt64(minute, 0, 59)
		second = clampInt64(second, 0, 59)
		millisecond = clampInt64(millisecond, 0, 999)
		microsecond = clampInt64(microsecond, 0, 999)
		nanosecond = clampInt64(nanosecond, 0, 999)
	case Reject:
		if !isValidIsoTime(hour, minute, second, millisecond, microsecond, nanosecond) {
			return IsoTime{}, fmt.Errorf("not a valid ISO time: %w", ErrRange)
		}
	default:
		return IsoTime{}, fmt.Errorf("overflow policy %v: %w", overflow, ErrRange)
	}
	return newIsoTimeUnsafe(hour, minute, second, millisecond, microsecond, nanosecond), nil
}

// MustNewIsoTime is like [NewIsoTime] but panics if the time cannot be
// constructed. It simplifies safe initialization of global variables
// holding times.
func MustNewIsoTime(hour, minute, second, millisecond, microsecond, nanosecond int, overflow Overflow) IsoTime {
	t, err := NewIsoTime(hour, minute, second, millisecond, microsecond, nanosecond, overflow)
	if err != nil {
		panic(fmt.Sprintf("NewIsoTime(%v, %v, %v, %v, %v, %v, %v) failed: %v",
			hour, minute, second, millisecond, microsecond, nanosecond, overflow, err))
	}
	return t
}

// NewIsoTimeUnchecked creates a new time without any validation.
// Use it only if you are absolutely sure that every field is within its
// range, for example because it is the result of [BalanceIsoTime].
func NewIsoTimeUnchecked(hour, minute, second, millisecond, microsecond, nanosecond int) IsoTime {
	return newIsoTimeUnsafe(int64(hour), int64(minute), int64(second), int64(millisecond), int64(microsecond), int64(nanosecond))
}

// Midnight returns the time 00:00:00.
func Midnight() IsoTime {
	return IsoTime{}
}

// Noon returns the time 12:00:00.
func Noon() IsoTime {
	return IsoTime{hour: 12}
}

var (
	oneThousandDec = decimal.MustNew(1_000, 0)
	oneBillionDec  = decimal.MustNew(nsPerSecond, 0)
	oneHalfDec     = decimal.MustNew(5, 1)
)

// NewIsoTimeFromComponents returns a time of day built from whole hour,
// minute, and second components and a decimal sub-second fraction in
// [0, 1). The fraction resolves to milliseconds, microseconds, and
// nanoseconds: the first two truncate, and the final nanosecond rounds
// to nearest with ties away from zero, so a fraction carrying more than
// nine digits does not silently lose its last nanosecond.
//
// NewIsoTimeFromComponents returns an error if the fraction is outside
// [0, 1), if any whole component is out of range, or if the nanosecond
// tie-break carries past 999.
func NewIsoTimeFromComponents(hour, minute, second int, fraction decimal.Decimal) (IsoTime, error) {
	t, err := newIsoTimeFromComponents(int64(hour), int64(minute), int64(second), fraction)
	if err != nil {
		return IsoTime{}, fmt.Errorf("constructing time from (%v, %v, %v, %v): %w", hour, minute, second, fraction, err)
	}
	return t, nil
}

func newIsoTimeFromComponents(hour, minute, second int64, fraction decimal.Decimal) (IsoTime, error) {
	if fraction.IsNeg() || !fraction.WithinOne() {
		return IsoTime{}, fmt.Errorf("second fraction %v: %w", fraction, ErrRange)
	}

	_, milli, ok := fraction.Trunc(3).Int64(3)
	if !ok {
		return IsoTime{}, fmt.Errorf("second fraction %v: %w", fraction, ErrRange)
	}
	_, wholeMicro, ok := fraction.Trunc(6).Int64(6)
	if !ok {
		return IsoTime{}, fmt.Errorf("second fraction %v: %w", fraction, ErrRange)
	}
	micro := wholeMicro - milli*1_000

	// The sub-microsecond remainder rounds half away from zero at the
	// nanosecond; 999.5 or more remaining nanoseconds overflow the field
	// and are rejected below.
	rem, err := fraction.Sub(fraction.Trunc(6))
	if err != nil {
		return IsoTime{}, fmt.Errorf("second fraction %v: %w", fraction, err)
	}
	nanos, err := rem.Mul(oneBillionDec)
	if err != nil {
		return IsoTime{}, fmt.Errorf("second fraction %v: %w", fraction, err)
	}
	nanos, err = nanos.Add(oneHalfDec)
	if err != nil {
		return IsoTime{}, fmt.Errorf("second fraction %v: %w", fraction, err)
	}
	nano, _, ok := nanos.Floor(0).Int64(0)
	if !ok {
		return IsoTime{}, fmt.Errorf("second fraction %v: %w", fraction, ErrRange)
	}

	return newIsoTime(hour, minute, second, milli, micro, nano, Reject)
}

// BalanceIsoTime converts arbitrary, possibly negative time components
// into a canonical time of day plus a whole-day carry. Excess carries
// upward stage by stage, nanoseconds through hours, using Euclidean
// division at every stage so each retained field is non-negative even
// when its input was not. The returned day carry is signed.
//
// Balancing an already-valid time returns the same fields and a zero
// carry.
func BalanceIsoTime(hour, minute, second, millisecond, microsecond, nanosecond float64) (int64, IsoTime) {
	var q float64
	q, nanosecond = divModFloat(nanosecond, 1_000)
	microsecond += q
	q, microsecond = divModFloat(microsecond, 1_000)
	millisecond += q
	q, millisecond = divModFloat(millisecond, 1_000)
	second += q
	q, second = divModFloat(second, 60)
	minute += q
	q, minute = divModFloat(minute, 60)
	hour += q
	days, hour := divModFloat(hour, 24)

	t := newIsoTimeUnsafe(int64(hour), int64(minute), int64(second),
		int64(millisecond), int64(microsecond), int64(nanosecond))
	return int64(days), t
}

// divModFloat returns the floored quotient and the non-negative remainder
// of x divided by y.
func divModFloat(x, y float64) (q, r float64) {
	r = math.Mod(x, y)
	if r < 0 {
		r += y
	}
	return (x - r) / y, r
}

// Hour returns the hour of the time.
func (t IsoTime) Hour() int {
	return int(t.hour)
}

// Minute returns the minute of the time.
func (t IsoTime) Minute() int {
	return int(t.minute)
}

// Second returns the second of the time.
func (t IsoTime) Second() int {
	return int(t.second)
}

// Millisecond returns the millisecond of the time.
func (t IsoTime) Millisecond() int {
	return int(t.millisecond)
}

// Microsecond returns the microsecond of the time.
func (t IsoTime) Microsecond() int {
	return int(t.microsecond)
}

// Nanosecond returns the nanosecond of the time.
func (t IsoTime) Nanosecond() int {
	return int(t.nanosecond)
}

// IsValid returns true if every field is within its own range.
// There is no cross-field invariant to check.
func (t IsoTime) IsValid() bool {
	return isValidIsoTime(int64(t.hour), int64(t.minute), int64(t.second),
		int64(t.millisecond), int64(t.microsecond), int64(t.nanosecond))
}

// Cmp compares times of day and returns:
//
//	-1 if t is earlier than u
//	 0 if t equals u
//	+1 if t is later than u
func (t IsoTime) Cmp(u IsoTime) int {
	a := t.subsecondNanos() + int64(t.second)*nsPerSecond + int64(t.minute)*nsPerMinute + int64(t.hour)*nsPerHour
	b := u.subsecondNanos() + int64(u.second)*nsPerSecond + int64(u.minute)*nsPerMinute + int64(u.hour)*nsPerHour
	return cmpInt64(a, b)
}

// Add returns the time moved by a normalized time duration, together
// with the signed whole-day carry the move produced.
func (t IsoTime) Add(d NormalizedTimeDuration) (int64, IsoTime) {
	return BalanceIsoTime(
		float64(t.hour),
		float64(t.minute),
		float64(t.second)+float64(d.Seconds()),
		float64(t.millisecond),
		float64(t.microsecond),
		float64(t.nanosecond)+float64(d.Subseconds()),
	)
}

// Diff returns the per-field difference u minus t as six raw deltas.
// The deltas are not carried into one another; the caller re-normalizes
// them separately.
func (t IsoTime) Diff(u IsoTime) TimeDuration {
	return TimeDuration{
		Hours:        int64(u.hour) - int64(t.hour),
		Minutes:      int64(u.minute) - int64(t.minute),
		Seconds:      int64(u.second) - int64(t.second),
		Milliseconds: int64(u.millisecond) - int64(t.millisecond),
		Microseconds: int64(u.microsecond) - int64(t.microsecond),
		Nanoseconds:  int64(u.nanosecond) - int64(t.nanosecond),
	}
}

// Round returns the time rounded to a multiple of increment units under
// the given mode, together with the signed whole-day carry the rounding
// produced. Fields coarser than the rounding unit are preserved; the
// unit itself and every finer field are replaced by the rounded quantity
// and re-balanced.
//
// Round returns an error if the unit is coarser than [Day], if the
// increment is invalid, or if one rounding step (unit width times
// increment) is not representable.
// See also method [IsoTime.RoundWithDayLength].
func (t IsoTime) Round(increment RoundingIncrement, unit Unit, mode RoundingMode) (int64, IsoTime, error) {
	days, r, err := t.round(increment, unit, mode, nsPerDay)
	if err != nil {
		return 0, IsoTime{}, fmt.Errorf("rounding %v: %w", t, err)
	}
	return days, r, nil
}

// RoundWithDayLength is like [Round] but measures the [Day] unit with
// the given day length in nanoseconds instead of the standard 24 hours,
// accommodating calendars whose days are offset-shifted.
//
// RoundWithDayLength returns an error if the day length is not positive.
func (t IsoTime) RoundWithDayLength(increment RoundingIncrement, unit Unit, mode RoundingMode, dayLengthNs int64) (int64, IsoTime, error) {
	if dayLengthNs <= 0 {
		return 0, IsoTime{}, fmt.Errorf("rounding %v: day length %v: %w", t, dayLengthNs, ErrRange)
	}
	days, r, err := t.round(increment, unit, mode, dayLengthNs)
	if err != nil {
		return 0, IsoTime{}, fmt.Errorf("rounding %v: %w", t, err)
	}
	return days, r, nil
}

func (t IsoTime) round(increment RoundingIncrement, unit Unit, mode RoundingMode, dayLength int64) (int64, IsoTime, error) {
	if increment == 0 || increment > maxRoundingIncrement {
		return 0, IsoTime{}, fmt.Errorf("rounding increment %v: %w", increment, ErrRange)
	}

	// The quantity is the position of the time within the unit's own
	// scale: whole days of nanoseconds for Day and Hour, only the
	// unit-and-finer remainder for Minute through Nanosecond.
	subsecond := t.subsecondNanos()
	var quantity int64
	switch unit {
	case Day, Hour:
		quantity = subsecond + int64(t.second)*nsPerSecond + int64(t.minute)*nsPerMinute + int64(t.hour)*nsPerHour
	case Minute:
		quantity = subsecond + int64(t.second)*nsPerSecond + int64(t.minute)*nsPerMinute
	case Second:
		quantity = subsecond + int64(t.second)*nsPerSecond
	case Millisecond:
		quantity = subsecond
	case Microsecond:
		quantity = int64(t.nanosecond) + int64(t.microsecond)*nsPerMicrosecond
	case Nanosecond:
		quantity = int64(t.nanosecond)
	default:
		return 0, IsoTime{}, fmt.Errorf("rounding unit %v: %w", unit, ErrRange)
	}

	unitWidth := dayLength
	if unit != Day {
		w, ok := unit.Nanoseconds()
		if !ok || w <= 0 {
			return 0, IsoTime{}, fmt.Errorf("rounding unit %v has no width: %w", unit, ErrRange)
		}
		unitWidth = w
	}
	if unitWidth > math.MaxInt64/int64(increment) {
		return 0, IsoTime{}, fmt.Errorf("rounding step %v x %v: %w", unitWidth, increment, ErrRange)
	}
	step := unitWidth * int64(increment)

	rounded, err := roundToIncrement(big.NewInt(quantity), big.NewInt(step), mode)
	if err != nil {
		return 0, IsoTime{}, err
	}
	count := new(big.Int).Quo(rounded, big.NewInt(unitWidth)).Int64()

	switch unit {
	case Day:
		return count, IsoTime{}, nil
	case Hour:
		days, r := BalanceIsoTime(float64(count), 0, 0, 0, 0, 0)
		return days, r, nil
	case Minute:
		days, r := BalanceIsoTime(float64(t.hour), float64(count), 0, 0, 0, 0)
		return days, r, nil
	case Second:
		days, r := BalanceIsoTime(float64(t.hour), float64(t.minute), float64(count), 0, 0, 0)
		return days, r, nil
	case Millisecond:
		days, r := BalanceIsoTime(float64(t.hour), float64(t.minute), float64(t.second), float64(count), 0, 0)
		return days, r, nil
	case Microsecond:
		days, r := BalanceIsoTime(float64(t.hour), float64(t.minute), float64(t.second), float64(t.millisecond), float64(count), 0)
		return days, r, nil
	default:
		days, r := BalanceIsoTime(float64(t.hour), float64(t.minute), float64(t.second), float64(t.millisecond), float64(t.microsecond), float64(count))
		return days, r, nil
	}
}

// ToEpochMs returns the hour, minute, second, and millisecond fields
// combined into milliseconds since midnight. The microsecond and
// nanosecond fields are excluded; a caller that needs them combines
// them separately.
func (t IsoTime) ToEpochMs() int64 {
	return int64(t.hour)*msPerHour + int64(t.minute)*msPerMinute + int64(t.second)*msPerSecond + int64(t.millisecond)
}

func (t IsoTime) subsecondNanos() int64 {
	return int64(t.nanosecond) + int64(t.microsecond)*nsPerMicrosecond + int64(t.millisecond)*nsPerMillisecond
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the time in ISO 8601 form, omitting
// trailing zeros of the sub-second fraction.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t IsoTime) String() string {
	s := pad2(int(t.hour)) + ":" + pad2(int(t.minute)) + ":" + pad2(int(t.second))
	if sub := t.subsecondNanos(); sub > 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", sub), "0")
	}
	return s
}

func isValidIsoTime(hour, minute, second, millisecond, microsecond, nanosecond int64) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	if minute < 0 || minute > 59 || second < 0 || second > 59 {
		return false
	}
	return millisecond >= 0 && millisecond <= 999 &&
		microsecond >= 0 && microsecond <= 999 &&
		nanosecond >= 0 && nanosecond <= 999
}
