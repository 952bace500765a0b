package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"buddypay/internal/core"
)

func TestMigrate_SeedsSingleSystemAccount(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	ctx := context.Background()

	require.NoError(t, suite.Client.Migrate(ctx), "migrations must be idempotent")

	version, err := suite.Client.Version(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), version)

	system, err := suite.Store.FindSystemAccount(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(systemAccountID), system.ID)
	require.True(t, system.IsSystemAccount)
	require.Equal(t, core.RoleSystem, system.Role)
	require.Equal(t, "0.00", system.Balance.StringFixed(2))

	_, err = suite.DB.Exec(`
		INSERT INTO accounts (username, email, password_hash, role, is_system_account)
		VALUES ('other', 'other@buddypay.local', '', 'SYSTEM', 1)
	`)
	require.Error(t, err, "a second system account must be rejected")
}

func TestStore_FindAccount(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	ctx := context.Background()

	jeanID := suite.SeedAccount(t, "jean", "10.50")
	paulID := suite.SeedAccount(t, "paul", "0.00")
	marieID := suite.SeedAccount(t, "marie", "0.00")
	suite.SeedFriend(t, jeanID, marieID)
	suite.SeedFriend(t, jeanID, paulID)

	tests := []struct {
		name          string
		find          func() (core.Account, error)
		expectedID    int64
		expectedError error
	}{
		{
			name:       "by_email",
			find:       func() (core.Account, error) { return suite.Store.FindAccountByEmail(ctx, "jean@mail.com") },
			expectedID: jeanID,
		},
		{
			name:       "by_username",
			find:       func() (core.Account, error) { return suite.Store.FindAccountByUsername(ctx, "jean") },
			expectedID: jeanID,
		},
		{
			name:       "by_id",
			find:       func() (core.Account, error) { return suite.Store.FindAccountByID(ctx, jeanID) },
			expectedID: jeanID,
		},
		{
			name:          "unknown_email",
			find:          func() (core.Account, error) { return suite.Store.FindAccountByEmail(ctx, "ghost@mail.com") },
			expectedError: core.ErrNonexistentEntity,
		},
		{
			name:          "unknown_id",
			find:          func() (core.Account, error) { return suite.Store.FindAccountByID(ctx, 999) },
			expectedError: core.ErrNonexistentEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := tt.find()
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedID, account.ID)
			require.Equal(t, "10.50", account.Balance.StringFixed(2))
			require.Equal(t, core.RoleUser, account.Role)
			require.Equal(t, []int64{marieID, paulID}, account.FriendIDs)
		})
	}

	friends, err := suite.Store.ListFriends(ctx, jeanID)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	require.Equal(t, "marie", friends[0].Username)
	require.Equal(t, "paul", friends[1].Username)

	exists, err := suite.Store.ExistsByUsernameOrEmail(ctx, "someone", "paul@mail.com")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = suite.Store.ExistsByUsernameOrEmail(ctx, "someone", "someone@mail.com")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestStore_CreateAndSaveAccount(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	ctx := context.Background()

	var created core.Account
	err := suite.Store.Atomic(ctx, func(r core.Repository) error {
		var err error
		created, err = r.CreateAccount(ctx, core.Account{
			Username:     "jean",
			Email:        "jean@mail.com",
			PasswordHash: "hash",
			Role:         core.RoleUser,
			Balance:      decimal.Zero,
		})
		return err
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "0.00", suite.GetAccountBalance(t, created.ID))

	err = suite.Store.Atomic(ctx, func(r core.Repository) error {
		created.Balance = decimal.RequireFromString("30.126")
		created.Username = "johnny"
		return r.SaveAccount(ctx, created)
	})
	require.NoError(t, err)
	require.Equal(t, "30.13", suite.GetAccountBalance(t, created.ID))

	reloaded, err := suite.Store.FindAccountByUsername(ctx, "johnny")
	require.NoError(t, err)
	require.Equal(t, created.ID, reloaded.ID)

	err = suite.Store.Atomic(ctx, func(r core.Repository) error {
		_, err := r.CreateAccount(ctx, core.Account{
			Username: "other",
			Email:    "jean@mail.com",
			Role:     core.RoleUser,
		})
		return err
	})
	require.ErrorIs(t, err, core.ErrEntityAlreadyExists)
}

func TestStore_AddFriend(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	ctx := context.Background()

	jeanID := suite.SeedAccount(t, "jean", "0.00")
	paulID := suite.SeedAccount(t, "paul", "0.00")

	addFriend := func(ownerID, friendID int64) error {
		return suite.Store.Atomic(ctx, func(r core.Repository) error {
			return r.AddFriend(ctx, ownerID, friendID)
		})
	}

	require.NoError(t, addFriend(jeanID, paulID))
	require.ErrorIs(t, addFriend(jeanID, paulID), core.ErrEntityAlreadyExists)
	require.ErrorIs(t, addFriend(jeanID, 999), core.ErrNonexistentEntity)

	paul, err := suite.Store.FindAccountByID(ctx, paulID)
	require.NoError(t, err)
	require.Empty(t, paul.FriendIDs, "the relation is directed")
}

func TestStore_Transactions(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	ctx := context.Background()

	jeanID := suite.SeedAccount(t, "jean", "100.00")
	paulID := suite.SeedAccount(t, "paul", "0.00")
	executedAt := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

	amounts := []string{"18.16", "0.13", "50.00"}
	for _, amount := range amounts {
		err := suite.Store.Atomic(ctx, func(r core.Repository) error {
			_, err := r.AddTransaction(ctx, core.Transaction{
				Reference:   uuid.New(),
				SenderID:    jeanID,
				ReceiverID:  paulID,
				Amount:      decimal.RequireFromString(amount),
				Description: "payment " + amount,
				ExecutedAt:  executedAt,
			})
			return err
		})
		require.NoError(t, err)
	}

	transactions, err := suite.Store.ListTransactionsBySender(ctx, jeanID)
	require.NoError(t, err)
	require.Len(t, transactions, len(amounts))

	for i, transaction := range transactions {
		require.Equal(t, amounts[i], transaction.Amount.StringFixed(2))
		require.Equal(t, paulID, transaction.ReceiverID)
		require.Equal(t, "payment "+amounts[i], transaction.Description)
		require.NotEqual(t, uuid.Nil, transaction.Reference)
		require.True(t, executedAt.Equal(transaction.ExecutedAt), "got %s", transaction.ExecutedAt)
	}

	received, err := suite.Store.ListTransactionsBySender(ctx, paulID)
	require.NoError(t, err)
	require.Empty(t, received)
}

func TestStore_AtomicRollsBack(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	ctx := context.Background()

	jeanID := suite.SeedAccount(t, "jean", "10.00")
	paulID := suite.SeedAccount(t, "paul", "0.00")
	errBoom := errors.New("boom")

	err := suite.Store.Atomic(ctx, func(r core.Repository) error {
		jean, err := r.FindAccountByID(ctx, jeanID)
		if err != nil {
			return err
		}
		jean.Balance = decimal.RequireFromString("0.00")
		if err = r.SaveAccount(ctx, jean); err != nil {
			return err
		}

		if _, err = r.AddTransaction(ctx, core.Transaction{
			Reference:  uuid.New(),
			SenderID:   jeanID,
			ReceiverID: paulID,
			Amount:     decimal.RequireFromString("10.00"),
			ExecutedAt: time.Now(),
		}); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	require.Equal(t, "10.00", suite.GetAccountBalance(t, jeanID))
	require.Equal(t, 0, suite.CountTransactions(t, jeanID))
}

func TestStore_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	t.Parallel()

	suite := NewTestSuite(t)
	ctx := context.Background()

	jeanID := suite.SeedAccount(t, "jean", "10.00")
	amount := decimal.RequireFromString("1.00")

	const workers = 25
	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			results[i] = suite.Store.Atomic(ctx, func(r core.Repository) error {
				jean, err := r.FindAccountByID(ctx, jeanID)
				if err != nil {
					return err
				}
				if err = jean.Debit(amount); err != nil {
					return err
				}
				return r.SaveAccount(ctx, jean)
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, core.ErrInsufficientFunds)
	}

	require.Equal(t, 10, succeeded)
	require.Equal(t, "0.00", suite.GetAccountBalance(t, jeanID))
}
