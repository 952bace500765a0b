package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"buddypay/internal/core"
)

const accountColumns = `id, username, email, password_hash, role, balance, is_system_account`

var _ core.Repository = Store{}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// Store keeps accounts, friendships and transactions in SQLite. Reads work on
// a plain Store; writes must go through Atomic.
type Store struct {
	db *sql.DB
	tx *sql.Tx
}

func NewStore(db *sql.DB) Store {
	return Store{
		db: db,
	}
}

func (s Store) conn() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s Store) FindAccountByEmail(ctx context.Context, email string) (core.Account, error) {
	return s.findAccount(ctx, "email = ?", email)
}

func (s Store) FindAccountByUsername(ctx context.Context, username string) (core.Account, error) {
	return s.findAccount(ctx, "username = ?", username)
}

func (s Store) FindAccountByID(ctx context.Context, id int64) (core.Account, error) {
	return s.findAccount(ctx, "id = ?", id)
}

func (s Store) FindSystemAccount(ctx context.Context) (core.Account, error) {
	return s.findAccount(ctx, "is_system_account = ?", true)
}

func (s Store) findAccount(ctx context.Context, where string, arg any) (core.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where

	account, err := scanAccount(s.conn().QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Account{}, core.ErrNonexistentEntity
		}

		return core.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	account.FriendIDs, err = s.friendIDs(ctx, account.ID)
	if err != nil {
		return core.Account{}, err
	}

	return account, nil
}

func (s Store) friendIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	rows, err := s.conn().QueryContext(ctx,
		`SELECT friend_id FROM user_friends WHERE user_id = ? ORDER BY rowid`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return ids, nil
}

func (s Store) ExistsByUsernameOrEmail(ctx context.Context, username string, email string) (bool, error) {
	var exists bool
	err := s.conn().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE username = ? OR email = ?)`,
		username, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	return exists, nil
}

func (s Store) CreateAccount(ctx context.Context, account core.Account) (core.Account, error) {
	if s.tx == nil {
		return core.Account{}, errors.New("CreateAccount must be called within Atomic transaction")
	}

	query := `
		INSERT INTO accounts (username, email, password_hash, role, balance, is_system_account)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.tx.ExecContext(ctx, query,
		account.Username,
		account.Email,
		account.PasswordHash,
		string(account.Role),
		core.RoundBalance(account.Balance).StringFixed(2),
		account.IsSystemAccount,
	)
	if err != nil {
		return core.Account{}, translateError("failed to insert account", err)
	}

	account.ID, err = result.LastInsertId()
	if err != nil {
		return core.Account{}, fmt.Errorf("failed to get inserted account ID: %w", err)
	}

	return account, nil
}

// SaveAccount writes the mutable columns of account. Friendships are written
// through AddFriend only.
func (s Store) SaveAccount(ctx context.Context, account core.Account) error {
	if s.tx == nil {
		return errors.New("SaveAccount must be called within Atomic transaction")
	}

	query := `
		UPDATE accounts
		SET username = ?, email = ?, password_hash = ?, balance = ?
		WHERE id = ?
	`

	result, err := s.tx.ExecContext(ctx, query,
		account.Username,
		account.Email,
		account.PasswordHash,
		core.RoundBalance(account.Balance).StringFixed(2),
		account.ID,
	)
	if err != nil {
		return translateError("failed to execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: no rows updated for account ID %d", core.ErrNonexistentEntity, account.ID)
	}

	return nil
}

func (s Store) AddFriend(ctx context.Context, ownerID int64, friendID int64) error {
	if s.tx == nil {
		return errors.New("AddFriend must be called within Atomic transaction")
	}

	_, err := s.tx.ExecContext(ctx,
		`INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?)`, ownerID, friendID)
	if err != nil {
		return translateError("failed to insert friend", err)
	}

	return nil
}

// ListFriends returns the accounts ownerID may send money to, in the order
// they were added. The returned accounts carry no friend lists of their own.
func (s Store) ListFriends(ctx context.Context, ownerID int64) ([]core.Account, error) {
	query := `
		SELECT a.id, a.username, a.email, a.password_hash, a.role, a.balance, a.is_system_account
		FROM user_friends f
		JOIN accounts a ON a.id = f.friend_id
		WHERE f.user_id = ?
		ORDER BY f.rowid
	`

	rows, err := s.conn().QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	var friends []core.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return friends, nil
}

func (s Store) AddTransaction(ctx context.Context, transaction core.Transaction) (core.Transaction, error) {
	if s.tx == nil {
		return core.Transaction{}, errors.New("AddTransaction must be called within Atomic transaction")
	}

	query := `
		INSERT INTO transactions (reference, sender_id, receiver_id, amount, description, executed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.tx.ExecContext(ctx, query,
		transaction.Reference.String(),
		transaction.SenderID,
		transaction.ReceiverID,
		transaction.Amount.StringFixed(2),
		transaction.Description,
		transaction.ExecutedAt.UTC(),
	)
	if err != nil {
		return core.Transaction{}, translateError("failed to insert transaction", err)
	}

	transaction.ID, err = result.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("failed to get inserted transaction ID: %w", err)
	}

	return transaction, nil
}

func (s Store) ListTransactionsBySender(ctx context.Context, senderID int64) ([]core.Transaction, error) {
	query := `
		SELECT id, reference, sender_id, receiver_id, amount, description, executed_at
		FROM transactions
		WHERE sender_id = ?
		ORDER BY id
	`

	rows, err := s.conn().QueryContext(ctx, query, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []core.Transaction
	for rows.Next() {
		var transaction core.Transaction
		err = rows.Scan(
			&transaction.ID,
			&transaction.Reference,
			&transaction.SenderID,
			&transaction.ReceiverID,
			&transaction.Amount,
			&transaction.Description,
			&transaction.ExecutedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

func (s Store) Atomic(ctx context.Context, cb func(core.Repository) error) error {
	// The DSN sets _txlock=immediate, so BeginTx issues BEGIN IMMEDIATE and
	// holds the write lock for the whole callback. Readers are not blocked in
	// WAL mode.
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := Store{
		db: s.db,
		tx: tx,
	}

	if err = cb(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanAccount(row rowScanner) (core.Account, error) {
	var (
		account core.Account
		role    string
	)
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&role,
		&account.Balance,
		&account.IsSystemAccount,
	)
	if err != nil {
		return core.Account{}, err
	}

	account.Role = core.Role(role)
	return account, nil
}

// translateError maps constraint violations onto core error kinds.
func translateError(msg string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %s: %w", core.ErrEntityAlreadyExists, msg, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %s: %w", core.ErrNonexistentEntity, msg, err)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
