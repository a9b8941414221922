package payslip

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize coerces a raw spreadsheet or JSON cell value into a numeric
// amount. Missing values (nil, empty string) and unparseable strings are
// treated as zero; absent and zero are deliberately conflated so that a
// sparse sheet still produces usable totals. Never panics, never returns
// NaN or Inf.
func Normalize(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
