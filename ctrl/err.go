package ctrl

import (
	"github.com/ezrec/ctlgen/translate"
)

var f = translate.From

// ErrFieldOverlap reports a control field sharing bits with another field.
type ErrFieldOverlap string

func (err ErrFieldOverlap) Error() string {
	return f("field %v overlaps an earlier field", string(err))
}

// ErrParseExpression reports a probe expression that did not evaluate to an
// integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not an address expression", string(err))
}

// ErrAddressRange reports a probe result outside the ROM address space.
type ErrAddressRange int64

func (err ErrAddressRange) Error() string {
	return f("address %#x is outside the ROM", int64(err))
}
