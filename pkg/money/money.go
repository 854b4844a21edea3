// Package money converts between integer cent amounts and the
// decimal-formatted euro labels the catalog displays ("10,99€").
// All arithmetic elsewhere happens on cents; labels are parsed and
// produced only here.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadLabel = errors.New("money: malformed price label")

// Parse reads a euro price label into cents. Both comma and dot decimal
// separators are accepted ("10,99€", "5.00€", "12"), with or without the
// currency suffix.
func Parse(label string) (int64, error) {
	s := strings.TrimSpace(label)
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrBadLabel
	}
	s = strings.ReplaceAll(s, ",", ".")

	whole, frac, hasFrac := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, ErrBadLabel
	}
	cents := units * 100
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, ErrBadLabel
		}
		if len(frac) == 1 {
			frac += "0"
		}
		c, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrBadLabel
		}
		cents += c
	}
	return cents, nil
}

// Format renders cents as a comma-decimal euro label: 2698 → "26,98€".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d€", sign, cents/100, cents%100)
}

// FromEuros converts a decimal euro amount (e.g. a JSON number) to cents,
// rounding to the nearest cent.
func FromEuros(euros float64) int64 {
	if euros < 0 {
		return -FromEuros(-euros)
	}
	return int64(euros*100 + 0.5)
}
