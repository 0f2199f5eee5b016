/*
Package temporal implements the ISO calendar date and time core of a
date-time arithmetic library: the [IsoDate], [IsoTime], and [IsoDateTime]
value types and the algorithms that connect their calendar-field form to
a linear epoch form.

# Features

  - Immutable date and time values, ensuring safe usage across multiple goroutines
  - Validating constructors under an explicit overflow policy (constrain or reject)
  - Balancing of out-of-range components back into canonical form with day carry
  - Date duration arithmetic with calendar-aware month-end clamping
  - Calendar differences decomposed into a caller-chosen largest unit
  - Time-of-day rounding to arbitrary increments under nine rounding modes
  - Exact conversion between date-times and epoch-nanosecond instants

# Representation

An IsoDate holds a signed year and a month and day valid for that year.
An IsoTime holds hour, minute, second, millisecond, microsecond, and
nanosecond fields; it is a sub-day offset with no calendar meaning of its
own. An IsoDateTime pairs the two and additionally guarantees that the
combined value lies within one day of the supported instant range, so a
bounded UTC offset can still be applied without re-validation.

Epoch-nanosecond instants exceed the range of int64 and are carried as
[math/big.Int] values.

# Construction

Every type offers a validating constructor, which fails with [ErrRange]
on invalid input, and a trusted constructor (NewIsoDateUnchecked and
friends) that skips validation for values already established as valid
by a prior computation. The validating constructors take an explicit
[Overflow] policy: [Constrain] clamps out-of-range fields, [Reject]
fails on them.

# Errors

All failures in this package are range failures wrapped around [ErrRange].
Values never mutate; an operation that fails leaves its operands intact
and returns zero values alongside the error.
*/
package temporal
