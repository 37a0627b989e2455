package util

import (
	"fmt"
	"strconv"
)

// RoundTwo rounds a float to two decimal places for display payloads.
func RoundTwo(n float64) float64 {
	val, _ := strconv.ParseFloat(fmt.Sprintf("%.2f", n), 64)
	return val
}
