package temporal

// Epoch-day utilities: a bijection between (year, month, day) triples and
// a signed count of days since 1970-01-01 in the proleptic Gregorian
// calendar. Month and day inputs may lie outside their nominal ranges;
// excess months resolve into years before conversion, excess days carry
// linearly. The conversion is exact for any signed 32-bit year and for
// field magnitudes produced by duration arithmetic.

const (
	msPerSecond = 1_000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour

	nsPerMicrosecond = 1_000
	nsPerMillisecond = 1_000 * nsPerMicrosecond
	nsPerSecond      = 1_000 * nsPerMillisecond
	nsPerMinute      = 60 * nsPerSecond
	nsPerHour        = 60 * nsPerMinute
	nsPerDay         = 24 * nsPerHour

	// maxEpochDays is the largest epoch-day distance a date may have
	// from the epoch and still combine into a valid date-time.
	maxEpochDays = 100_000_001
)

// floorDiv returns the quotient of x and y rounded toward negative infinity.
func floorDiv(x, y int64) int64 {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv; it has the sign of y.
func floorMod(x, y int64) int64 {
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

func isoLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func isoDaysInYear(year int64) int {
	if isoLeapYear(year) {
		return 366
	}
	return 365
}

func isoDaysInMonth(year int64, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isoLeapYear(year) {
			return 29
		}
		return 28
	}
}

// isoDayOfYear returns the ordinal day for a valid (year, month, day), 1-based.
func isoDayOfYear(year int64, month, day int) int {
	doy := day
	for m := 1; m < month; m++ {
		doy += isoDaysInMonth(year, m)
	}
	return doy
}

// epochDaysFromDate converts a (year, month, day) triple to epoch days.
// The month is 1-based and, like the day, may be arbitrarily out of range:
// whole years are first resolved out of the month with floored division,
// then the conversion proceeds in the era/year-of-era form so that no
// intermediate value depends on the sign of the year.
func epochDaysFromDate(year, month, day int64) int64 {
	year += floorDiv(month-1, 12)
	month = floorMod(month-1, 12) + 1

	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400 // [0, 399]
	var mp int64
	if month > 2 {
		mp = month - 3
	} else {
		mp = month + 9
	}
	doy := (153*mp+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// dateFromEpochDays is the inverse of [epochDaysFromDate] for canonical
// dates: the result always has month in [1, 12] and day in [1, 31].
func dateFromEpochDays(days int64) (year int64, month, day int) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 400
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, int(m), int(d)
}

// epochDaysToEpochMs combines an epoch-day count with a millisecond
// offset into that day.
func epochDaysToEpochMs(days, timeMs int64) int64 {
	return days*msPerDay + timeMs
}

// balanceIsoYearMonth resolves an out-of-range month into the year so
// that the returned month is in [1, 12].
func balanceIsoYearMonth(year, month int64) (int64, int64) {
	y := year + floorDiv(month-1, 12)
	m := floorMod(month-1, 12) + 1
	return y, m
}
