package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

func ParseFloatToDecimal(number *float64) *decimal.Decimal {
	if number == nil {
		return nil
	}
	d := decimal.NewFromFloat(*number)
	return &d
}

// TrimPtr trims the string behind s in place. nil stays nil.
func TrimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
