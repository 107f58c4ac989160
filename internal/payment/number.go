package payment

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// parseNumber reads n as a float64. Out-of-range literals saturate to ±Inf
// or 0, as they do in a JavaScript JSON parser.
func parseNumber(n json.Number) (float64, bool) {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// formatNumber follows ECMAScript Number::toString: plain notation for
// 1e-7 < |f| < 1e21, exponent notation ("1e+21", "1.5e-7") outside it.
// Downstream verifiers rebuild signatures with that formatting.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case f < 0:
		return "-" + formatNumber(-f)
	}

	// Shortest round-trip digits, e.g. "1.005e+02".
	mantissa, expPart, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)

	k := len(digits)
	n := exp + 1 // position of the decimal point relative to digits

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(exp)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(exp)
}
