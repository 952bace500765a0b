package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash string, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type observedOperation struct {
	op     Operation
	amount string
	err    error
}

type recordingObserver struct {
	operations  []observedOperation
	commissions []string
}

func (o *recordingObserver) ObserveOperation(op Operation, amount decimal.Decimal, err error) {
	o.operations = append(o.operations, observedOperation{op: op, amount: amount.StringFixed(2), err: err})
}

func (o *recordingObserver) ObserveCommission(commission decimal.Decimal) {
	o.commissions = append(o.commissions, commission.StringFixed(2))
}

func newTestService(t *testing.T, repo Repository, observer Observer) Service {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(repo, plainHasher{}, observer, logger)
	service.now = func() time.Time { return fixedNow }

	return service
}

func expectAtomic(repo *MockRepository) *gomock.Call {
	return repo.EXPECT().
		Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cb func(Repository) error) error {
			return cb(repo)
		})
}

// accountWith matches an Account by ID and balance rendered at two digits.
type accountMatcher struct {
	id      int64
	balance string
}

func accountWith(id int64, balance string) gomock.Matcher {
	return accountMatcher{id: id, balance: balance}
}

func (m accountMatcher) Matches(x any) bool {
	account, ok := x.(Account)
	if !ok {
		return false
	}
	return account.ID == m.id && account.Balance.StringFixed(2) == m.balance
}

func (m accountMatcher) String() string {
	return fmt.Sprintf("account %d with balance %s", m.id, m.balance)
}

func userAccount(id int64, username string, balance string, friendIDs ...int64) Account {
	return Account{
		ID:           id,
		Username:     username,
		Email:        strings.ToLower(username) + "@mail.com",
		PasswordHash: "hashed:secret",
		Role:         RoleUser,
		Balance:      dec(balance),
		FriendIDs:    friendIDs,
	}
}

func systemAccount(balance string) Account {
	return Account{
		ID:              1,
		Username:        "buddypay",
		Email:           "system@buddypay.local",
		Role:            RoleSystem,
		Balance:         dec(balance),
		IsSystemAccount: true,
	}
}
