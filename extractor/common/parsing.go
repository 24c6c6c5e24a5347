package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Credit Suisse extracts group thousands with commas or apostrophes
// (1'234.50 and 1,234.50 both occur). The decimal point is kept as is.
var groupingReplacer = strings.NewReplacer(",", "", "'", "")

// CleanAmount strips grouping separators and surrounding whitespace from a
// numeric token. The token structure is otherwise preserved, so a malformed
// value like "12.34.56" stays malformed and fails the parse downstream.
func CleanAmount(text string) string {
	return strings.TrimSpace(groupingReplacer.Replace(text))
}

// IsNumeric reports whether a token parses as an exact decimal after
// cleaning. This is the cheap shape test used while scanning line tokens;
// the value is re-parsed strictly wherever arithmetic is needed.
func IsNumeric(text string) bool {
	cleaned := CleanAmount(text)
	if cleaned == "" {
		return false
	}
	_, err := decimal.NewFromString(cleaned)
	return err == nil
}

// FormatAmount renders a decimal keeping the scale of its operands, so
// 1200.00 - 1000.00 comes out as "200.00" rather than "200".
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}
