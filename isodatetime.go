package temporal

import (
	"fmt"
	"math/big"
)

// The supported instant range spans 100 million days of nanoseconds on
// either side of the epoch. A date-time is allowed one extra day of
// slack beyond that range so that applying a bounded UTC offset to an
// in-range instant cannot invalidate the wall-clock value it produces.
var (
	nsMaxInstant     = new(big.Int).Mul(big.NewInt(nsPerDay), big.NewInt(100_000_000))
	nsMinInstant     = new(big.Int).Neg(nsMaxInstant)
	maxDateTimeNanos = new(big.Int).Add(nsMaxInstant, big.NewInt(nsPerDay))
	minDateTimeNanos = new(big.Int).Sub(nsMinInstant, big.NewInt(nsPerDay))
)

// IsoDateTime type represents a wall-clock date and time of day without
// a time zone: an [IsoDate] paired with an [IsoTime].
// A validated IsoDateTime always lies strictly within one day of the
// supported instant range.
// IsoDateTime is designed to be safe for concurrent use by multiple
// goroutines.
type IsoDateTime struct {
	date IsoDate
	time IsoTime
}

// newIsoDateTimeUnsafe creates a new date-time without checking limits.
// Use it only after a computation has already established validity.
func newIsoDateTimeUnsafe(date IsoDate, time IsoTime) IsoDateTime {
	return IsoDateTime{date: date, time: time}
}

// NewIsoDateTime returns a date-time combining the given date and time
// of day.
//
// NewIsoDateTime returns an error if the date is more than 100,000,001
// epoch days from the epoch, or if the combined value in epoch
// nanoseconds does not lie strictly within one day of the supported
// instant range.
func NewIsoDateTime(date IsoDate, time IsoTime) (IsoDateTime, error) {
	if !isoDateTimeWithinLimits(date, time) {
		return IsoDateTime{}, fmt.Errorf("date-time %vT%v outside of supported range: %w", date, time, ErrRange)
	}
	return newIsoDateTimeUnsafe(date, time), nil
}

// MustNewIsoDateTime is like [NewIsoDateTime] but panics if the
// date-time cannot be constructed. It simplifies safe initialization of
// global variables holding date-times.
func MustNewIsoDateTime(date IsoDate, time IsoTime) IsoDateTime {
	dt, err := NewIsoDateTime(date, time)
	if err != nil {
		panic(fmt.Sprintf("NewIsoDateTime(%v, %v) failed: %v", date, time, err))
	}
	return dt
}

// NewIsoDateTimeUnchecked creates a new date-time without any
// validation. Use it only if you are absolutely sure that the pair is
// within the supported range, for example because it was produced by
// arithmetic on an already-validated date-time.
func NewIsoDateTimeUnchecked(date IsoDate, time IsoTime) IsoDateTime {
	return newIsoDateTimeUnsafe(date, time)
}

// NewIsoDateTimeFromEpochNanoseconds converts an absolute epoch
// nanosecond count to a wall-clock date-time, then shifts it by offsetNs
// (a signed sub-day adjustment such as a UTC offset). The offset enters
// through the nanosecond channel and re-balances through every coarser
// field, so it may carry across midnight and move the date.
//
// The decomposition is exact: the count splits into whole epoch
// milliseconds and a non-negative nanosecond remainder with integer
// arithmetic, so instants at the extreme ends of the range do not lose
// precision.
//
// NewIsoDateTimeFromEpochNanoseconds returns an error if nanos lies
// outside the supported instant range.
func NewIsoDateTimeFromEpochNanoseconds(nanos *big.Int, offsetNs int64) (IsoDateTime, error) {
	if nanos.Cmp(nsMinInstant) < 0 || nanos.Cmp(nsMaxInstant) > 0 {
		return IsoDateTime{}, fmt.Errorf("constructing date-time from epoch nanoseconds %v: %w", nanos, ErrRange)
	}

	quo, rem := new(big.Int).QuoRem(nanos, big.NewInt(nsPerMillisecond), new(big.Int))
	if rem.Sign() < 0 {
		rem.Add(rem, big.NewInt(nsPerMillisecond))
		quo.Sub(quo, oneBig)
	}
	epochMs := quo.Int64()
	days := floorDiv(epochMs, msPerDay)
	timeMs := floorMod(epochMs, msPerDay)

	year, month, day := dateFromEpochDays(days)
	hour := timeMs / msPerHour
	minute := timeMs % msPerHour / msPerMinute
	second := timeMs % msPerMinute / msPerSecond
	milli := timeMs % msPerSecond

	micro := rem.Int64() / nsPerMicrosecond
	nano := rem.Int64() % nsPerMicrosecond

	return balanceIsoDateTime(year, int64(month), int64(day),
		float64(hour), float64(minute), float64(second), float64(milli),
		float64(micro), float64(nano)+float64(offsetNs)), nil
}

// balanceIsoDateTime normalizes time components with day carry, then
// folds the carry into the date.
func balanceIsoDateTime(year, month, day int64, hour, minute, second, millisecond, microsecond, nanosecond float64) IsoDateTime {
	days, t := BalanceIsoTime(hour, minute, second, millisecond, microsecond, nanosecond)
	d := balanceIsoDate(year, month, day+days)
	return newIsoDateTimeUnsafe(d, t)
}

// Date returns the date of the date-time.
func (dt IsoDateTime) Date() IsoDate {
	return dt.date
}

// Time returns the time of day of the date-time.
func (dt IsoDateTime) Time() IsoTime {
	return dt.time
}

// Cmp compares date-times chronologically and returns:
//
//	-1 if dt is earlier than e
//	 0 if dt equals e
//	+1 if dt is later than e
func (dt IsoDateTime) Cmp(e IsoDateTime) int {
	if c := dt.date.Cmp(e.date); c != 0 {
		return c
	}
	return dt.time.Cmp(e.time)
}

// IsWithinLimits returns true if the date-time lies strictly within one
// day of the supported instant range. Validated date-times always do;
// unchecked construction and offset arithmetic can produce values that
// do not.
func (dt IsoDateTime) IsWithinLimits() bool {
	return isoDateTimeWithinLimits(dt.date, dt.time)
}

// EpochNanoseconds returns the date-time as nanoseconds since the epoch,
// taken at zero offset. The result exceeds the range of int64 near the
// edges of the supported range and is therefore returned as a [big.Int].
// See also constructor [NewIsoDateTimeFromEpochNanoseconds].
func (dt IsoDateTime) EpochNanoseconds() *big.Int {
	return utcEpochNanos(dt.date, dt.time)
}

// AddDateDuration returns the date-time moved by a calendar duration and
// a normalized time duration. The time duration applies to the time of
// day first; the whole-day carry it produces folds into the day
// component of the calendar duration, which the calendar then applies to
// the date under the given overflow policy. A nil calendar means plain
// ISO arithmetic on the epoch-day number line.
//
// Errors from the calendar propagate unchanged.
func (dt IsoDateTime) AddDateDuration(cal Calendar, duration DateDuration, norm NormalizedTimeDuration, overflow Overflow) (IsoDateTime, error) {
	days, t := dt.time.Add(norm)
	duration.Days += days

	var date IsoDate
	var err error
	if cal == nil {
		date, err = dt.date.AddDateDuration(duration, overflow)
	} else {
		date, err = cal.DateAdd(dt.date, duration, overflow)
	}
	if err != nil {
		return IsoDateTime{}, err
	}
	return newIsoDateTimeUnsafe(date, t), nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the date-time in ISO 8601 form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (dt IsoDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// isoDateTimeWithinLimits reports whether a date and time pair combines
// to an epoch-nanosecond value strictly within one day of the supported
// instant range.
func isoDateTimeWithinLimits(date IsoDate, time IsoTime) bool {
	days := date.ToEpochDays()
	if days > maxEpochDays || days < -maxEpochDays {
		return false
	}
	ns := utcEpochNanos(date, time)
	return ns.Cmp(minDateTimeNanos) > 0 && ns.Cmp(maxDateTimeNanos) < 0
}

// utcEpochNanos converts a date and time pair to nanoseconds since the
// epoch at zero offset.
func utcEpochNanos(date IsoDate, time IsoTime) *big.Int {
	epochMs := epochDaysToEpochMs(date.ToEpochDays(), time.ToEpochMs())
	ns := new(big.Int).Mul(big.NewInt(epochMs), big.NewInt(nsPerMillisecond))
	sub := int64(time.microsecond)*nsPerMicrosecond + int64(time.nanosecond)
	return ns.Add(ns, big.NewInt(sub))
}
