// Package money converts between the textual amounts found in bank statements
// and integer cents.
package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// dotDecimal matches amounts written with a dot as the decimal separator and no
// grouping, e.g. "30.00" or "1234.5".
var dotDecimal = regexp.MustCompile(`^\d+\.\d{1,2}$`)

// ParseBRL parses an amount into cents. It accepts the Brazilian format used by
// local banks ("R$ 1.234,56", "-30,00", "R$ -5,00") and plain dot decimals ("30.00").
// When a comma is present, dots are treated as thousand separators. A trailing
// "D" marker or parentheses mark a debit; a trailing "C" marks a credit.
func ParseBRL(s string) (int64, error) {
	clean, negative := stripSign(strings.TrimSpace(s))

	clean = strings.TrimPrefix(clean, "R$")
	clean = strings.TrimSpace(clean)

	clean, neg := stripSign(clean)
	negative = negative || neg

	if clean == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if !dotDecimal.MatchString(clean) {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	cents := d.Mul(hundred).Round(0).IntPart()
	if negative {
		cents = -cents
	}

	return cents, nil
}

// stripSign removes debit and credit markers around an amount and reports
// whether they made it negative.
func stripSign(s string) (string, bool) {
	negative := false

	if n := len(s); n > 1 {
		switch s[n-1] {
		case 'D', 'd':
			negative = true
			s = strings.TrimSpace(s[:n-1])
		case 'C', 'c':
			s = strings.TrimSpace(s[:n-1])
		}
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimSpace(s[1:])
	}

	return s, negative
}

// FormatBRL renders cents as "R$ 1.234,56".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	fixed := decimal.New(cents, -2).StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}

		grouped.WriteRune(r)
	}

	return fmt.Sprintf("R$ %s%s,%s", sign, grouped.String(), frac)
}

// String renders cents as the shortest decimal representation ("30", "12.5").
// Content hashes depend on this exact rendering.
func String(cents int64) string {
	return decimal.New(cents, -2).String()
}

// ToFloat converts cents to a float for JSON payloads.
func ToFloat(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// FromFloat converts a float amount (e.g. from model output) to cents, rounding
// to the nearest cent.
func FromFloat(f float64) int64 {
	return decimal.NewFromFloat(f).Mul(hundred).Round(0).IntPart()
}
