package scoring

import (
	"math"
	"strconv"
)

// roundTo rounds v to the given number of decimal places using the exact
// decimal value of v, so 0.125 rounds to 0.12 and 2.675 to 2.67.
func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return out
}

// rate returns part/whole*100, the order of operations the bands were
// calibrated against.
func rate(part, whole int) float64 {
	return float64(part) / float64(whole) * 100
}

func distinct(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
