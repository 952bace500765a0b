package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
)

var zeroBalance = decimal.New(0, -amountScale)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type Service struct {
	repository Repository
	hasher     PasswordHasher
	observer   Observer
	logger     Logger
	now        func() time.Time
}

func NewService(repository Repository, hasher PasswordHasher, observer Observer, logger Logger) Service {
	return Service{
		repository: repository,
		hasher:     hasher,
		observer:   observer,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates a regular user with an empty balance and no friends.
func (s Service) Register(ctx context.Context, req RegisterRequest) (Account, error) {
	account, err := s.register(ctx, req)
	s.observer.ObserveOperation(OperationRegister, decimal.Zero, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "register request failed", "username", req.Username, "error", err)
		return Account{}, err
	}

	s.logger.InfoContext(ctx, "user registered", "username", account.Username, "id", account.ID)
	return account, nil
}

func (s Service) register(ctx context.Context, req RegisterRequest) (Account, error) {
	if err := validateUsername(req.Username); err != nil {
		return Account{}, err
	}
	if err := validateEmail(req.Email); err != nil {
		return Account{}, err
	}
	if req.Password == "" {
		return Account{}, fmt.Errorf("%w: password cannot be empty", ErrInvalidData)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created Account
	err = s.repository.Atomic(ctx, func(r Repository) error {
		exists, err := r.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrUserAlreadyExists
		}

		created, err = r.CreateAccount(ctx, Account{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         RoleUser,
			Balance:      zeroBalance,
		})
		return err
	})
	if err != nil {
		return Account{}, err
	}

	return created, nil
}

// Authenticate checks a login. Unknown emails, the system account and wrong
// passwords all yield ErrInvalidCredentials.
func (s Service) Authenticate(ctx context.Context, email string, password string) (Account, error) {
	account, err := s.repository.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNonexistentEntity) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, err
	}

	if account.IsSystemAccount {
		return Account{}, ErrInvalidCredentials
	}

	if err = s.hasher.Compare(account.PasswordHash, password); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	return account, nil
}

// AccountEmail returns the current email of a user account. Access tokens
// carry the account ID, so an email change does not orphan them.
func (s Service) AccountEmail(ctx context.Context, accountID int64) (string, error) {
	account, err := s.repository.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNonexistentEntity) {
			return "", userNotFound("id", strconv.FormatInt(accountID, 10))
		}
		return "", err
	}

	if account.IsSystemAccount {
		return "", userNotFound("id", strconv.FormatInt(accountID, 10))
	}

	return account.Email, nil
}

// UpdateProfile changes username, email and password. Empty fields are kept.
func (s Service) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) error {
	err := s.updateProfile(ctx, email, update)
	s.observer.ObserveOperation(OperationUpdateProfile, decimal.Zero, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "profile update failed", "email", email, "error", err)
		return err
	}

	s.logger.InfoContext(ctx, "profile updated", "email", email)
	return nil
}

func (s Service) updateProfile(ctx context.Context, email string, update ProfileUpdate) error {
	if update.Username != "" {
		if err := validateUsername(update.Username); err != nil {
			return err
		}
	}
	if update.Email != "" {
		if err := validateEmail(update.Email); err != nil {
			return err
		}
	}

	var hash string
	if update.Password != "" {
		var err error
		if hash, err = s.hasher.Hash(update.Password); err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	return s.repository.Atomic(ctx, func(r Repository) error {
		account, err := findUserByEmail(ctx, r, email)
		if err != nil {
			return err
		}

		if update.Username != "" && update.Username != account.Username {
			if err = ensureFree(r.FindAccountByUsername(ctx, update.Username)); err != nil {
				return err
			}
			account.Username = update.Username
		}

		if update.Email != "" && update.Email != account.Email {
			if err = ensureFree(r.FindAccountByEmail(ctx, update.Email)); err != nil {
				return err
			}
			account.Email = update.Email
		}

		if hash != "" {
			account.PasswordHash = hash
		}

		return r.SaveAccount(ctx, account)
	})
}

// AddFriend lets the user identified by userEmail send money to friendEmail.
func (s Service) AddFriend(ctx context.Context, userEmail string, friendEmail string) error {
	err := s.repository.Atomic(ctx, func(r Repository) error {
		owner, err := findUserByEmail(ctx, r, userEmail)
		if err != nil {
			return err
		}

		candidate, err := findUserByEmail(ctx, r, friendEmail)
		if err != nil {
			return err
		}

		if err = AddFriend(&owner, candidate); err != nil {
			return err
		}

		return r.AddFriend(ctx, owner.ID, candidate.ID)
	})
	s.observer.ObserveOperation(OperationAddFriend, decimal.Zero, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "friend addition failed", "user", userEmail, "friend", friendEmail, "error", err)
		return err
	}

	s.logger.InfoContext(ctx, "friend added", "user", userEmail, "friend", friendEmail)
	return nil
}

func (s Service) ListFriends(ctx context.Context, email string) ([]Friend, error) {
	account, err := findUserByEmail(ctx, s.repository, email)
	if err != nil {
		return nil, err
	}

	friends, err := s.repository.ListFriends(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	result := make([]Friend, 0, len(friends))
	for _, friend := range friends {
		result = append(result, toFriend(friend))
	}

	return result, nil
}

func toFriend(account Account) Friend {
	return Friend{FriendName: account.Username}
}

func findUserByEmail(ctx context.Context, r Repository, email string) (Account, error) {
	account, err := r.FindAccountByEmail(ctx, email)
	if errors.Is(err, ErrNonexistentEntity) {
		return Account{}, userNotFound("email", email)
	}

	return account, err
}

func findUserByUsername(ctx context.Context, r Repository, username string) (Account, error) {
	account, err := r.FindAccountByUsername(ctx, username)
	if errors.Is(err, ErrNonexistentEntity) {
		return Account{}, userNotFound("username", username)
	}

	return account, err
}

// ensureFree turns a lookup result into ErrUserAlreadyExists when something
// was found.
func ensureFree(_ Account, err error) error {
	switch {
	case err == nil:
		return ErrUserAlreadyExists
	case errors.Is(err, ErrNonexistentEntity):
		return nil
	default:
		return err
	}
}

func validateUsername(username string) error {
	if n := utf8.RuneCountInString(username); n == 0 || n > maxUsernameLength {
		return fmt.Errorf("%w: username must be between 1 and %d characters", ErrInvalidData, maxUsernameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if n := utf8.RuneCountInString(email); n == 0 || n > maxEmailLength {
		return fmt.Errorf("%w: email must be between 1 and %d characters", ErrInvalidData, maxEmailLength)
	}
	return nil
}
