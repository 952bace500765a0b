package core

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser   Role = "USER"
	RoleSystem Role = "SYSTEM"
)

type Account struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    string
	Role            Role
	Balance         decimal.Decimal
	IsSystemAccount bool
	// FriendIDs holds the accounts this account may send money to.
	// The relation is directed.
	FriendIDs []int64
}

func (a *Account) HasSufficientFunds(amount decimal.Decimal) bool {
	return !a.Balance.LessThan(amount)
}

// Credit adds amount to the balance. Callers guarantee amount is not negative.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = RoundBalance(a.Balance.Add(amount))
}

// Debit removes amount from the balance, or leaves it untouched and returns
// ErrInsufficientFunds when the balance does not cover it.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !a.HasSufficientFunds(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = RoundBalance(a.Balance.Sub(amount))
	return nil
}

func (a *Account) HasFriend(id int64) bool {
	return slices.Contains(a.FriendIDs, id)
}

// Transaction is the append-only record of a peer transfer. Amount is the
// principal only; commissions never appear here.
type Transaction struct {
	ID          int64
	Reference   uuid.UUID
	SenderID    int64
	ReceiverID  int64
	Amount      decimal.Decimal
	Description string
	ExecutedAt  time.Time
}

type TransferRequest struct {
	FriendName  string
	Amount      decimal.Decimal
	Description string
}

type SentTransaction struct {
	FriendName  string
	Amount      string
	Description string
}

type Friend struct {
	FriendName string
}

type BankTransferResult struct {
	ReceiverName string
	NewBalance   string
}

type WithdrawalResult struct {
	ReceiverName    string
	WithdrawnAmount string
	NewBalance      string
}

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// ProfileUpdate carries the fields a user wants to change. Empty fields are
// left as they are.
type ProfileUpdate struct {
	Username string
	Email    string
	Password string
}
