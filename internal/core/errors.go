package core

import (
	"errors"
	"fmt"
)

var (
	ErrNonexistentEntity   = errors.New("entity does not exist")
	ErrEntityAlreadyExists = errors.New("entity already exists")
	ErrAuthorization       = errors.New("operation not authorized")
	ErrInvalidData         = errors.New("invalid data")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

var (
	ErrSelfFriend          = fmt.Errorf("%w: cannot add yourself as a friend", ErrAuthorization)
	ErrSystemAccountFriend = fmt.Errorf("%w: the system account cannot be added as a friend", ErrAuthorization)
	ErrNotAFriend          = fmt.Errorf("%w: receiver is not in your friend list", ErrAuthorization)
	ErrSystemReceiver      = fmt.Errorf("%w: the system account cannot receive transfers", ErrAuthorization)
	ErrNonPositiveAmount   = fmt.Errorf("%w: transfer amount must be greater than zero", ErrAuthorization)

	ErrFriendAlreadyAdded = fmt.Errorf("%w: friend already in your friend list", ErrEntityAlreadyExists)
	ErrUserAlreadyExists  = fmt.Errorf("%w: a user with this email or username already exists", ErrEntityAlreadyExists)

	ErrInvalidIBAN        = fmt.Errorf("%w: IBAN is invalid", ErrInvalidData)
	ErrInvalidBankHolder  = fmt.Errorf("%w: bank holder is invalid", ErrInvalidData)
	ErrInvalidBankAmount  = fmt.Errorf("%w: amount is invalid, amount must be greater than zero", ErrInvalidData)
	ErrInvalidAmountValue = fmt.Errorf("%w: amount is not a valid number", ErrInvalidData)
)

func userNotFound(field, value string) error {
	return fmt.Errorf("%w: user with %s %s does not exist", ErrNonexistentEntity, field, value)
}
