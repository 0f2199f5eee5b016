package temporal

import "errors"

// ErrRange is the error reported when a value cannot be represented:
// a rejected out-of-range field, a date or date-time outside the
// supported instant window, an unsupported rounding unit, or a rounding
// step that overflows.
// Call sites wrap ErrRange with context, so test it with [errors.Is].
var ErrRange = errors.New("value out of range")
