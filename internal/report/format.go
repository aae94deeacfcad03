// Package report maps a stored report document to the view model the report
// pages render. Everything here is pure: no I/O, no clocks.
package report

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when a budget carries no currency code.
const DefaultCurrency = "USD"

var printer = message.NewPrinter(language.English)

// FormatCurrency renders a whole-unit amount with digit grouping, prefixed by
// its ISO 4217 code: FormatCurrency(18500000, "EGP") is "EGP 18,500,000".
// An empty code means USD. Unknown codes are printed as given, upper-cased.
func FormatCurrency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
	}
	rounded := math.Round(amount)
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return code + " " + printer.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
}

// FormatPercent renders a stored percentage without trailing zeros: 38 → "38%",
// 12.5 → "12.5%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// barWidth clamps a percentage to a CSS width.
func barWidth(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
