package sheet

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	errEmptyQuantity      = errors.New("empty quantity")
	errNegativeQuantity   = errors.New("negative quantity")
	errFractionalQuantity = errors.New("fractional quantity")
	errQuantityOverflow   = errors.New("quantity out of range")
)

// parseQuantity reads a non-negative whole quantity. Spreadsheets often
// store integers as "10.0" or "1E+3", both of which are accepted.
func parseQuantity(raw string) (int, error) {
	if raw == "" {
		return 0, errEmptyQuantity
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, errNegativeQuantity
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, errFractionalQuantity
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, errQuantityOverflow
	}
	return int(d.IntPart()), nil
}
