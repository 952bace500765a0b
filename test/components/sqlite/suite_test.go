package integration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"buddypay/internal/sqlite"
)

const systemAccountID = 1

type TestSuite struct {
	DB     *sql.DB
	DBPath string
	Client *sqlite.Client
	Store  sqlite.Store
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test_buddypay.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
		ForeignKeys:  true,
	}

	client, err := sqlite.NewClient(context.Background(), config)
	require.NoError(t, err, "failed to create test client")
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Migrate(context.Background()), "failed to migrate schema")

	return &TestSuite{
		DB:     client.DB(),
		DBPath: dbPath,
		Client: client,
		Store:  sqlite.NewStore(client.DB()),
	}
}

func (s *TestSuite) SeedAccount(t *testing.T, username string, balance string) int64 {
	t.Helper()

	query := `
		INSERT INTO accounts (username, email, password_hash, role, balance)
		VALUES (?, ?, 'hash', 'USER', ?)
	`

	result, err := s.DB.Exec(query, username, username+"@mail.com", balance)
	require.NoError(t, err, "failed to seed account")

	id, err := result.LastInsertId()
	require.NoError(t, err, "failed to get inserted account ID")

	return id
}

func (s *TestSuite) SeedFriend(t *testing.T, ownerID, friendID int64) {
	t.Helper()

	_, err := s.DB.Exec(`INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?)`, ownerID, friendID)
	require.NoError(t, err, "failed to seed friend")
}

func (s *TestSuite) GetAccountBalance(t *testing.T, accountID int64) string {
	t.Helper()

	var balance string
	err := s.DB.QueryRow("SELECT balance FROM accounts WHERE id = ?", accountID).Scan(&balance)
	require.NoError(t, err, "failed to get account balance")

	return balance
}

func (s *TestSuite) CountTransactions(t *testing.T, senderID int64) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM transactions WHERE sender_id = ?", senderID).Scan(&count)
	require.NoError(t, err, "failed to count transactions")

	return count
}
