package util

import (
	"math"
)

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Round Method to round to 2 decimals
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

// MillisFromMicros converts a microsecond count to milliseconds with two
// decimals.
func MillisFromMicros(us int64) float64 {
	return Round(float64(us) / 1000)
}
