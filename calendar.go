package temporal

// Calendar performs date arithmetic in calendar space.
// Implementations interpret a [DateDuration] according to their own
// month and year lengths and return the moved date as an ISO date.
//
// [IsoDateTime.AddDateDuration] is the only operation in this package
// that consults a Calendar; everything else works directly in the ISO
// calendar.
type Calendar interface {
	// DateAdd returns date moved by duration, regulating the
	// day-of-month under the given overflow policy.
	DateAdd(date IsoDate, duration DateDuration, overflow Overflow) (IsoDate, error)
}

// ISOCalendar is the built-in ISO 8601 calendar.
// Its date arithmetic is plain epoch-day linearization: field-level
// carry for years and months, linear day carry for weeks and days.
type ISOCalendar struct{}

// DateAdd implements the [Calendar] interface.
// See also method [IsoDate.AddDateDuration].
func (ISOCalendar) DateAdd(date IsoDate, duration DateDuration, overflow Overflow) (IsoDate, error) {
	return date.AddDateDuration(duration, overflow)
}
