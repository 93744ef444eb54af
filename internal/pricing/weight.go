package pricing

import (
	"strconv"
	"strings"
)

// FormatWeight renders grams as kilograms with at most two decimals: 24000 → "24kg", 10 → "0.01kg".
func FormatWeight(grams int32) string {
	s := strconv.FormatFloat(float64(grams)/1000, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "kg"
}

func formatQuality(q float32) string {
	return strconv.FormatFloat(float64(q), 'f', -1, 32)
}
