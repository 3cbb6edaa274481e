package value

import (
	"math"
	"strconv"
)

// Value is the only numeric type flowing through the calculator: literals,
// operands and results.
type Value = int32

const (
	Min Value = math.MinInt32
	Max Value = math.MaxInt32
)

// Fits reports whether v can be represented as a Value.
func Fits(v int64) bool {
	return v >= int64(Min) && v <= int64(Max)
}

func Format(v Value) string {
	return strconv.FormatInt(int64(v), 10)
}
