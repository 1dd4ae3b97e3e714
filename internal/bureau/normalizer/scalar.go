package normalizer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ParseMoney converts a Brazilian-locale monetary string ("1.234,56") into a
// float64. Absent or unparsable input yields 0: monetary fields are routinely
// missing for applicants with no debt history, so zero is the safe reading
// for aggregation, not an error.
func ParseMoney(raw string) float64 {
	d, ok := parseMoneyDecimal(raw)
	if !ok {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// ParseCount converts an integer counter field, defaulting to 0 for absent or
// non-numeric values.
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// sumMoney aggregates monetary fields exactly before converting to float64,
// so "100,00" + "50,50" is 150.5 with no binary drift.
func sumMoney(fields ...gjson.Result) float64 {
	total := decimal.Zero
	for _, f := range fields {
		if d, ok := moneyDecimal(f); ok {
			total = total.Add(d)
		}
	}
	f, _ := total.Float64()
	return f
}

// moneyDecimal enforces the string-only contract for monetary fields. The
// upstream types equivalent fields inconsistently, and the locale cleanup is
// only meaningful for strings: running it on a stringified JSON number would
// misread its decimal point as a thousands separator. Anything that is not a
// string reads as the safe zero.
func moneyDecimal(v gjson.Result) (decimal.Decimal, bool) {
	if v.Type != gjson.String {
		return decimal.Zero, false
	}
	return parseMoneyDecimal(v.Str)
}

// parseMoneyDecimal strips the "." thousands separators and swaps the ","
// decimal separator before parsing.
func parseMoneyDecimal(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	cleaned := strings.ReplaceAll(raw, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
