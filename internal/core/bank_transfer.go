package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

type BankTransferRequest struct {
	IBAN       string
	BankHolder string
	Amount     decimal.Decimal
}

// Validate checks IBAN, then holder, then amount, and returns the first
// failure.
func (r BankTransferRequest) Validate() error {
	if !IsValidIBAN(r.IBAN) {
		return ErrInvalidIBAN
	}

	if strings.TrimSpace(r.BankHolder) == "" {
		return ErrInvalidBankHolder
	}

	if !r.Amount.IsPositive() {
		return ErrInvalidBankAmount
	}

	return nil
}
