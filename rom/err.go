package rom

import (
	"github.com/ezrec/ctlgen/translate"
)

var f = translate.From

// ErrPlaneRange reports a byte plane index outside the control word.
type ErrPlaneRange int

func (err ErrPlaneRange) Error() string {
	return f("plane %d is outside the control word", int(err))
}
