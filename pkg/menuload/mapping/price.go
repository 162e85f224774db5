package mapping

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

var currencyMarks = []string{"€", "EUR", "eur", "$"}

// ParsePrice coerces a cell value to a price. Numbers pass through; text such
// as "8.50", "€13", "13 €" or "8,50" is parsed. Anything else is 0.
func ParsePrice(v interface{}) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int64:
		f = float64(x)
	case int:
		f = float64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0
		}
		f = n
	case string:
		f = parsePriceText(x)
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parsePriceText(s string) float64 {
	s = strings.TrimSpace(s)
	for _, mark := range currencyMarks {
		s = strings.ReplaceAll(s, mark, "")
	}
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
