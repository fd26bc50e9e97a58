// Package core holds the domain model of the finance tracker.
//
// This file contains amount parsing and localized currency formatting.
// Amounts are whole minor-unit-free integers (Vietnamese đồng has no
// fractional unit), so no cents arithmetic is needed.
package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySuffix = "₫"

// printer groups digits the vi-VN way (50000 -> "50.000").
var printer = message.NewPrinter(language.Vietnamese)

// FormatCurrency renders an amount with an explicit sign glyph and
// locale-grouped digits plus the currency suffix. Zero gets no sign.
func FormatCurrency(amount int64) string {
	sign := ""
	switch {
	case amount < 0:
		sign = "-"
	case amount > 0:
		sign = "+"
	}
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	return sign + printer.Sprintf("%d", abs) + " " + currencySuffix
}

// FormatNoSignCurrency renders the grouped amount and currency suffix
// without a leading sign glyph (negatives keep their natural minus).
func FormatNoSignCurrency(amount int64) string {
	return printer.Sprintf("%d", amount) + " " + currencySuffix
}

// ParseAmount coerces user amount input to an integer. It reads an
// optional sign and the leading digit run; anything unparseable is zero,
// never an error.
func ParseAmount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	var n int64
	seen := false
	for _, r := range s {
		if !unicode.IsDigit(r) {
			break
		}
		seen = true
		n = n*10 + int64(r-'0')
	}
	if !seen {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
