package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatKRW renders a won amount with thousands separators, no decimals
func FormatKRW(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String() + "원"
	if neg {
		return "-" + out
	}
	return out
}

// FormatPct renders a percentage with one decimal place
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCount renders an integer count with thousands separators
func FormatCount(n int) string {
	return strings.TrimSuffix(FormatKRW(float64(n)), "원")
}
