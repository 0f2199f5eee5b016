package temporal

import "fmt"

// DateDuration represents the calendar portion of a duration: signed
// counts of years, months, weeks, and days.
// Its components conventionally share a sign; [IsoDate.DiffIsoDate]
// always produces same-signed components.
type DateDuration struct {
	Years  int64
	Months int64
	Weeks  int64
	Days   int64
}

// Sign returns:
//
//	-1 if the first nonzero component of d is negative
//	 0 if d is zero
//	+1 if the first nonzero component of d is positive
func (d DateDuration) Sign() int {
	for _, c := range [...]int64{d.Years, d.Months, d.Weeks, d.Days} {
		if c > 0 {
			return 1
		}
		if c < 0 {
			return -1
		}
	}
	return 0
}

// IsZero returns true if every component of d is zero.
func (d DateDuration) IsZero() bool {
	return d == DateDuration{}
}

// Negated returns a duration with every component negated.
func (d DateDuration) Negated() DateDuration {
	return DateDuration{-d.Years, -d.Months, -d.Weeks, -d.Days}
}

// TimeDuration represents the clock portion of a duration as six raw
// per-field deltas. The fields are not carried into one another;
// [IsoTime.Diff] produces them and a caller normalizes separately.
type TimeDuration struct {
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
	Nanoseconds  int64
}

// Negated returns a duration with every component negated.
func (d TimeDuration) Negated() TimeDuration {
	return TimeDuration{-d.Hours, -d.Minutes, -d.Seconds, -d.Milliseconds, -d.Microseconds, -d.Nanoseconds}
}

// maxNormalizedSeconds bounds the whole-second component of a normalized
// time duration to 2^53, keeping every second count exactly representable
// when it passes through float balancing.
const maxNormalizedSeconds = int64(1) << 53

// NormalizedTimeDuration is a time duration collapsed to whole seconds
// and a sub-second nanosecond remainder.
// The two components never have opposing signs, and the remainder stays
// below one second in magnitude.
type NormalizedTimeDuration struct {
	seconds    int64
	subseconds int32
}

// NewNormalizedTimeDuration returns a normalized time duration equal to
// seconds plus subseconds nanoseconds.
//
// NewNormalizedTimeDuration returns an error if:
//   - the magnitude of seconds exceeds 2^53;
//   - the magnitude of subseconds is one second or more;
//   - seconds and subseconds have opposing signs.
func NewNormalizedTimeDuration(seconds int64, subseconds int32) (NormalizedTimeDuration, error) {
	if seconds > maxNormalizedSeconds || seconds < -maxNormalizedSeconds {
		return NormalizedTimeDuration{}, fmt.Errorf("normalized duration seconds %v: %w", seconds, ErrRange)
	}
	if subseconds <= -nsPerSecond || subseconds >= nsPerSecond {
		return NormalizedTimeDuration{}, fmt.Errorf("normalized duration subseconds %v: %w", subseconds, ErrRange)
	}
	if (seconds > 0 && subseconds < 0) || (seconds < 0 && subseconds > 0) {
		return NormalizedTimeDuration{}, fmt.Errorf("normalized duration components with opposing signs: %w", ErrRange)
	}
	return NormalizedTimeDuration{seconds: seconds, subseconds: subseconds}, nil
}

// NormalizedTimeDurationFromNanoseconds converts a nanosecond count to a
// normalized time duration. Every int64 nanosecond count is representable.
func NormalizedTimeDurationFromNanoseconds(ns int64) NormalizedTimeDuration {
	return NormalizedTimeDuration{seconds: ns / nsPerSecond, subseconds: int32(ns % nsPerSecond)}
}

// Seconds returns the whole-second component of the duration.
func (n NormalizedTimeDuration) Seconds() int64 {
	return n.seconds
}

// Subseconds returns the sub-second component of the duration
// in nanoseconds.
func (n NormalizedTimeDuration) Subseconds() int32 {
	return n.subseconds
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n = 0
//	+1 if n > 0
func (n NormalizedTimeDuration) Sign() int {
	switch {
	case n.seconds > 0 || n.subseconds > 0:
		return 1
	case n.seconds < 0 || n.subseconds < 0:
		return -1
	default:
		return 0
	}
}

// IsZero returns true if n has no seconds and no subseconds.
func (n NormalizedTimeDuration) IsZero() bool {
	return n.seconds == 0 && n.subseconds == 0
}
