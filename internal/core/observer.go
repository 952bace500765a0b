package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Operation string

const (
	OperationRegister           Operation = "register"
	OperationAddFriend          Operation = "add_friend"
	OperationUpdateProfile      Operation = "update_profile"
	OperationTransfer           Operation = "transfer"
	OperationCommissionTransfer Operation = "commission_transfer"
	OperationBankDeposit        Operation = "bank_deposit"
	OperationBankWithdrawal     Operation = "bank_withdrawal"
)

// Observer receives the outcome of every ledger operation. amount is zero
// for operations that move no money.
type Observer interface {
	ObserveOperation(op Operation, amount decimal.Decimal, err error)
	ObserveCommission(commission decimal.Decimal)
}

type NopObserver struct{}

func (NopObserver) ObserveOperation(Operation, decimal.Decimal, error) {}

func (NopObserver) ObserveCommission(decimal.Decimal) {}

// Outcome names the error kind of err, "ok" for nil and "error" for
// failures that carry no kind.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrAuthorization):
		return "unauthorized"
	case errors.Is(err, ErrInvalidData):
		return "invalid_data"
	case errors.Is(err, ErrNonexistentEntity):
		return "not_found"
	case errors.Is(err, ErrEntityAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
