package pipeline

import (
	"math"
	"strconv"
	"strings"
)

// safeDiv guards every ratio in the pipeline: a zero or invalid denominator
// yields 0, never NaN or an infinity.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// safePct is safeDiv expressed as a percentage
func safePct(num, den float64) float64 {
	return safeDiv(num, den) * 100
}

// parseMoney coerces a currency cell that may carry thousands separators or
// stray whitespace. Unparsable or negative values become 0.
func parseMoney(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// parseQty coerces a quantity cell, failure -> 0
func parseQty(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
