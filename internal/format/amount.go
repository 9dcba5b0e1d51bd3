// Package format renders money amounts for API responses.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

var (
	thousand = decimal.New(1, 3)
	million  = decimal.New(1, 6)
	billion  = decimal.New(1, 9)
)

// Abbreviate shortens an amount for display: 1500 -> "1.5K",
// 5000000 -> "5.0M", 1200000000 -> "1.2B". Amounts below one thousand
// are returned unchanged.
func Abbreviate(v decimal.Decimal) string {
	abs := v.Abs()

	switch {
	case abs.GreaterThanOrEqual(billion):
		return v.Div(billion).StringFixed(1) + "B"
	case abs.GreaterThanOrEqual(million):
		return v.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return v.Div(thousand).StringFixed(1) + "K"
	}

	return v.String()
}

// VND renders the full amount with Vietnamese digit grouping,
// e.g. 5000000 -> "5.000.000 ₫".
func VND(v decimal.Decimal) string {
	return printer.Sprintf("%d ₫", v.Round(0).IntPart())
}
