package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// Repository is the store the ledger runs against. Lookups that find nothing
// return ErrNonexistentEntity.
//
// Atomic must run cb inside a single store transaction that commits only when
// cb returns nil. The transaction has to serialize writers touching the same
// account (serializable isolation, per-account row locks, or a database write
// lock taken before the first read), otherwise two transfers may both pass a
// funds check against the same stale balance.
type Repository interface {
	FindAccountByEmail(ctx context.Context, email string) (Account, error)
	FindAccountByUsername(ctx context.Context, username string) (Account, error)
	FindAccountByID(ctx context.Context, id int64) (Account, error)
	FindSystemAccount(ctx context.Context) (Account, error)
	ExistsByUsernameOrEmail(ctx context.Context, username string, email string) (bool, error)
	CreateAccount(ctx context.Context, account Account) (Account, error)
	SaveAccount(ctx context.Context, account Account) error
	AddFriend(ctx context.Context, ownerID int64, friendID int64) error
	ListFriends(ctx context.Context, ownerID int64) ([]Account, error)

	AddTransaction(ctx context.Context, transaction Transaction) (Transaction, error)
	ListTransactionsBySender(ctx context.Context, senderID int64) ([]Transaction, error)

	Atomic(ctx context.Context, cb func(r Repository) error) error
}
