package temporal

import (
	"fmt"
	"math"
)

// IsoDate type represents a calendar date in the proleptic Gregorian
// calendar as used by ISO 8601: a signed year together with a month and
// day valid for that year.
// Its zero value is 0000-00-00, which is not a valid date; construct
// dates through [NewIsoDate], [NewIsoDateUnchecked], or [BalanceIsoDate].
// IsoDate is designed to be safe for concurrent use by multiple goroutines.
type IsoDate struct {
	year  int32
	month uint8 // 1..12
	day   uint8 // 1..days in month
}

// newIsoDateUnsafe creates a new date without checking the fields.
// The caller guarantees that month and day already fit their ranges.
func newIsoDateUnsafe(year, month, day int64) IsoDate {
	return IsoDate{year: int32(year), month: uint8(month), day: uint8(day)}
}

// NewIsoDate returns a calendar date with the given year, month (1-12),
// and day. Out-of-range months and days are regulated under the given
// overflow policy: [Constrain] clamps the month into the year and the day
// into the clamped month, [Reject] fails on either.
//
// NewIsoDate returns an error if:
//   - the policy is [Reject] and month or day is out of range;
//   - the regulated date, taken at noon, lies outside the supported
//     date-time range.
func NewIsoDate(year, month, day int, overflow Overflow) (IsoDate, error) {
	d, err := newIsoDate(int64(year), int64(month), int64(day), overflow)
	if err != nil {
		return IsoDate{}, fmt.Errorf("constructing date from (%v, %v, %v): %w", year, month, day, err)
	}
	return d, nil
}

func newIsoDate(year, month, day int64, overflow Overflow) (IsoDate, error) {
	if year < math.MinInt32 || year > math.MaxInt32 {
		return IsoDate{}, fmt.Errorf("year %v: %w", year, ErrRange)
	}
	switch overflow {
	case Constrain:
		month = clampInt64(month, 1, 12)
		day = clampInt64(day, 1, int64(isoDaysInMonth(year, int(month))))
	case Reject:
		if !isValidIsoDate(year, month, day) {
			return IsoDate{}, fmt.Errorf("not a valid ISO date: %w", ErrRange)
		}
	default:
		return IsoDate{}, fmt.Errorf("overflow policy %v: %w", overflow, ErrRange)
	}
	d := newIsoDateUnsafe(year, month, day)
	if !isoDateTimeWithinLimits(d, Noon()) {
		return IsoDate{}, fmt.Errorf("date outside of supported range: %w", ErrRange)
	}
	return d, nil
}

// MustNewIsoDate is like [NewIsoDate] but panics if the date cannot be
// constructed. It simplifies safe initialization of global variables
// holding dates.
func MustNewIsoDate(year, month, day int, overflow Overflow) IsoDate {
	d, err := NewIsoDate(year, month, day, overflow)
	if err != nil {
		panic(fmt.Sprintf("NewIsoDate(%v, %v, %v, %v) failed: %v", year, month, day, overflow, err))
	}
	return d
}

// NewIsoDateUnchecked creates a new date without any validation.
// Use it only if you are absolutely sure that the arguments form a valid
// date within the supported range, for example because they are the
// result of [BalanceIsoDate] over in-range inputs.
func NewIsoDateUnchecked(year, month, day int) IsoDate {
	return newIsoDateUnsafe(int64(year), int64(month), int64(day))
}

// BalanceIsoDate converts arbitrary out-of-range month and day values
// into a canonical date by carrying the excess through the epoch-day
// number line: month 13 of one year is month 1 of the next, day 0 is the
// last day of the preceding month, and so on.
//
// Balancing never fails and does not enforce the supported date-time
// range; validate the result with [NewIsoDateTime] or [NewIsoDate] if it
// came from unconstrained arithmetic.
func BalanceIsoDate(year, month, day int) IsoDate {
	return balanceIsoDate(int64(year), int64(month), int64(day))
}

func balanceIsoDate(year, month, day int64) IsoDate {
	y, m, d := dateFromEpochDays(epochDaysFromDate(year, month, day))
	return newIsoDateUnsafe(y, int64(m), int64(d))
}

// Year returns the year of the date.
func (d IsoDate) Year() int {
	return int(d.year)
}

// Month returns the month of the date, from 1 to 12.
func (d IsoDate) Month() int {
	return int(d.month)
}

// Day returns the day of the month.
func (d IsoDate) Day() int {
	return int(d.day)
}

// DayOfWeek returns the ISO day of the week, from 1 (Monday) to 7 (Sunday).
func (d IsoDate) DayOfWeek() int {
	return int(floorMod(d.ToEpochDays()+3, 7)) + 1
}

// DayOfYear returns the ordinal day of the year, from 1 to 365 or 366.
func (d IsoDate) DayOfYear() int {
	return isoDayOfYear(int64(d.year), int(d.month), int(d.day))
}

// DaysInMonth returns the number of days in the month of the date.
func (d IsoDate) DaysInMonth() int {
	return isoDaysInMonth(int64(d.year), int(d.month))
}

// DaysInYear returns the number of days in the year of the date.
func (d IsoDate) DaysInYear() int {
	return isoDaysInYear(int64(d.year))
}

// InLeapYear returns true if the year of the date is a leap year.
func (d IsoDate) InLeapYear() bool {
	return isoLeapYear(int64(d.year))
}

// ToEpochDays returns the number of days between the epoch (1970-01-01)
// and the date; dates before the epoch yield negative counts.
// The date must be valid.
func (d IsoDate) ToEpochDays() int64 {
	return epochDaysFromDate(int64(d.year), int64(d.month), int64(d.day))
}

// IsValid returns true if the month and day fit their calendar ranges
// for the year. It does not check the supported date-time range.
func (d IsoDate) IsValid() bool {
	return isValidIsoDate(int64(d.year), int64(d.month), int64(d.day))
}

// Cmp compares dates chronologically and returns:
//
//	-1 if d is earlier than e
//	 0 if d equals e
//	+1 if d is later than e
func (d IsoDate) Cmp(e IsoDate) int {
	return compareIsoDateFields(int64(d.year), int64(d.month), int64(d.day), e)
}

// AddDateDuration returns the date moved by the given duration.
// Years and months are added in calendar space first: the year and month
// advance with field-level carry, and the day of month is regulated
// against the length of the landing month under the given overflow
// policy (this is where Jan 31 plus one month clamps to Feb 28 under
// [Constrain], or fails under [Reject]). Weeks and days are then added
// linearly on the epoch-day number line.
//
// AddDateDuration returns an error if the intermediate or final date
// cannot be constructed under the policy.
func (d IsoDate) AddDateDuration(duration DateDuration, overflow Overflow) (IsoDate, error) {
	e, err := d.addDateDuration(duration, overflow)
	if err != nil {
		return IsoDate{}, fmt.Errorf("adding duration to %v: %w", d, err)
	}
	return e, nil
}

func (d IsoDate) addDateDuration(duration DateDuration, overflow Overflow) (IsoDate, error) {
	y, m := balanceIsoYearMonth(int64(d.year)+duration.Years, int64(d.month)+duration.Months)
	intermediate, err := newIsoDate(y, m, int64(d.day), overflow)
	if err != nil {
		return IsoDate{}, err
	}
	days := duration.Days + 7*duration.Weeks
	return balanceIsoDate(int64(intermediate.year), int64(intermediate.month), int64(intermediate.day)+days), nil
}

// DiffIsoDate returns the signed calendar difference e minus d,
// decomposed so that no unit coarser than largestUnit appears in the
// result and every finer unit absorbs the remainder. All components of
// the result share one sign, and negating the operands negates the
// result component-wise.
//
// Year and month counts are found by stepping candidate offsets until
// the moved date would surpass e; the day count is the epoch-day
// distance that remains after the year/month-moved date has its day
// clamped into the landing month. With largestUnit [Week] the days split
// into whole weeks and leftover days; units finer than [Day] leave the
// whole difference in days.
//
// DiffIsoDate returns an error if an intermediate date falls outside the
// supported range.
func (d IsoDate) DiffIsoDate(e IsoDate, largestUnit Unit) (DateDuration, error) {
	du, err := d.diffIsoDate(e, largestUnit)
	if err != nil {
		return DateDuration{}, fmt.Errorf("computing difference between %v and %v: %w", d, e, err)
	}
	return du, nil
}

func (d IsoDate) diffIsoDate(e IsoDate, largestUnit Unit) (DateDuration, error) {
	sign := int64(-d.Cmp(e))
	if sign == 0 {
		return DateDuration{}, nil
	}

	var years int64
	if largestUnit == Year {
		// Start from the raw year gap, pulled back by one step so the
		// first probe cannot overshoot a partial year.
		candidate := int64(e.year) - int64(d.year)
		if candidate != 0 {
			candidate -= sign
		}
		for !isoDateSurpasses(int64(d.year)+candidate, int64(d.month), int64(d.day), e, sign) {
			years = candidate
			candidate += sign
		}
	}

	var months int64
	if largestUnit == Year || largestUnit == Month {
		candidate := sign
		iy, im := balanceIsoYearMonth(int64(d.year)+years, int64(d.month)+candidate)
		for !isoDateSurpasses(iy, im, int64(d.day), e, sign) {
			months = candidate
			candidate += sign
			iy, im = balanceIsoYearMonth(iy, im+sign)
		}
	}

	iy, im := balanceIsoYearMonth(int64(d.year)+years, int64(d.month)+months)
	constrained, err := newIsoDate(iy, im, int64(d.day), Constrain)
	if err != nil {
		return DateDuration{}, err
	}

	days := e.ToEpochDays() - constrained.ToEpochDays()
	var weeks int64
	if largestUnit == Week {
		weeks, days = days/7, days%7
	}
	return DateDuration{Years: years, Months: months, Weeks: weeks, Days: days}, nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the date in ISO 8601 form, using the
// six-digit extended year form outside years 0000 through 9999.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d IsoDate) String() string {
	return formatIsoYear(int(d.year)) + "-" + pad2(int(d.month)) + "-" + pad2(int(d.day))
}

func formatIsoYear(y int) string {
	if y >= 0 && y <= 9999 {
		return fmt.Sprintf("%04d", y)
	}
	sign := "+"
	if y < 0 {
		sign = "-"
		y = -y
	}
	return sign + fmt.Sprintf("%06d", y)
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func isValidIsoDate(year, month, day int64) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= int64(isoDaysInMonth(year, int(month)))
}

// isoDateSurpasses reports whether the (year, month, day) triple lies
// beyond date e in the direction of sign. The triple need not form a
// valid date; comparison is field-wise.
func isoDateSurpasses(year, month, day int64, e IsoDate, sign int64) bool {
	return int64(compareIsoDateFields(year, month, day, e))*sign == 1
}

func compareIsoDateFields(year, month, day int64, e IsoDate) int {
	switch {
	case year != int64(e.year):
		return cmpInt64(year, int64(e.year))
	case month != int64(e.month):
		return cmpInt64(month, int64(e.month))
	default:
		return cmpInt64(day, int64(e.day))
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func clampInt64(n, lo, hi int64) int64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
