package port

import (
	"context"

	"buddypay/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=ledger.go -destination=ledger_mock.go -package=port

// Ledger is everything the transport layer needs from the money service.
// Access tokens carry the account ID; AccountEmail turns it into the email
// the other operations are keyed by.
type Ledger interface {
	Register(ctx context.Context, req core.RegisterRequest) (core.Account, error)
	Authenticate(ctx context.Context, email string, password string) (core.Account, error)
	AccountEmail(ctx context.Context, accountID int64) (string, error)
	UpdateProfile(ctx context.Context, email string, update core.ProfileUpdate) error

	AddFriend(ctx context.Context, userEmail string, friendEmail string) error
	ListFriends(ctx context.Context, email string) ([]core.Friend, error)

	SendMoneyToFriend(ctx context.Context, senderEmail string, req core.TransferRequest) (string, error)
	SendMoneyWithCommission(ctx context.Context, senderEmail string, req core.TransferRequest) (string, error)
	ListSentTransactions(ctx context.Context, email string) ([]core.SentTransaction, error)

	PerformBankTransfer(ctx context.Context, email string, req core.BankTransferRequest) (core.BankTransferResult, error)
	PerformWithdrawal(ctx context.Context, email string, req core.BankTransferRequest) (core.WithdrawalResult, error)
}

var _ Ledger = core.Service{}
