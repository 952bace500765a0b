package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	amountScale = 2

	// Bounds on typed amounts. Arithmetic on a decimal rescales through a
	// big.Int sized by its exponent, so extreme exponents are refused here.
	maxAmountFractionDigits = 10
	maxAmountIntegerDigits  = 20
	maxAmountLength         = 64
)

var commissionRate = decimal.RequireFromString("0.005")

// RoundBalance applies the rounding used for every stored amount:
// half-to-even at two fractional digits.
func RoundBalance(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(amountScale)
}

// FormatAmount renders an amount for display: two fractional digits,
// half-up rounding, no grouping, no currency symbol.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(amountScale)
}

// Commission is the platform fee charged on a commission transfer.
func Commission(amount decimal.Decimal) decimal.Decimal {
	return RoundBalance(amount.Mul(commissionRate))
}

// ParseAmount reads a decimal amount as typed by a user.
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: amount cannot be empty", ErrInvalidData)
	}

	if len(value) > maxAmountLength {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is too long", ErrInvalidAmountValue)
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidAmountValue, value)
	}

	exponent := int(amount.Exponent())
	if exponent < -maxAmountFractionDigits || amount.NumDigits()+exponent > maxAmountIntegerDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is out of range", ErrInvalidAmountValue, value)
	}

	return amount, nil
}
