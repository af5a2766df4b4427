package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadAmount = errors.New("invalid money amount")

// ParsePrice converts a decimal string like "2500.00" to cents.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrBadAmount
	}

	whole, frac, found := strings.Cut(s, ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, ErrBadAmount
	}

	cents := units * 100

	if found {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, ErrBadAmount
		}

		part, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || part < 0 {
			return 0, ErrBadAmount
		}

		if len(frac) == 1 {
			part *= 10
		}

		cents += part
	}

	return cents, nil
}

// FormatPrice renders cents as a decimal string with two places.
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
