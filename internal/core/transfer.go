package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SendMoneyToFriend moves req.Amount, rounded half-to-even to cents, from the
// sender to one of the sender's friends and returns a receipt. An amount that
// rounds to zero is refused.
func (s Service) SendMoneyToFriend(ctx context.Context, senderEmail string, req TransferRequest) (string, error) {
	req.Amount = RoundBalance(req.Amount)

	var receipt string
	err := s.repository.Atomic(ctx, func(r Repository) error {
		sender, receiver, err := s.authorizeTransfer(ctx, r, senderEmail, req)
		if err != nil {
			return err
		}

		if err = sender.Debit(req.Amount); err != nil {
			return err
		}
		receiver.Credit(req.Amount)

		if err = s.settle(ctx, r, req, sender, receiver); err != nil {
			return err
		}

		receipt = fmt.Sprintf("Transfer of %s from %s to %s completed successfully.",
			FormatAmount(req.Amount), sender.Username, receiver.Username)
		return nil
	})
	s.observer.ObserveOperation(OperationTransfer, req.Amount, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "transfer failed", "sender", senderEmail, "receiver", req.FriendName, "error", err)
		return "", err
	}

	s.logger.InfoContext(ctx, "transfer completed",
		"sender", senderEmail,
		"receiver", req.FriendName,
		"amount", FormatAmount(req.Amount),
	)
	return receipt, nil
}

// SendMoneyWithCommission works like SendMoneyToFriend but also charges the
// sender a commission that is credited to the system account. The recorded
// transaction holds the principal only.
func (s Service) SendMoneyWithCommission(ctx context.Context, senderEmail string, req TransferRequest) (string, error) {
	req.Amount = RoundBalance(req.Amount)

	var (
		receipt    string
		commission decimal.Decimal
	)
	err := s.repository.Atomic(ctx, func(r Repository) error {
		sender, receiver, err := s.authorizeTransfer(ctx, r, senderEmail, req)
		if err != nil {
			return err
		}

		commission = Commission(req.Amount)
		s.logger.DebugContext(ctx, "commission computed",
			"sender", sender.Username,
			"available", FormatAmount(sender.Balance),
			"total_debit", FormatAmount(req.Amount.Add(commission)),
		)
		if err = sender.Debit(req.Amount.Add(commission)); err != nil {
			return err
		}
		receiver.Credit(req.Amount)

		system, err := r.FindSystemAccount(ctx)
		if err != nil {
			return fmt.Errorf("failed to load system account: %w", err)
		}
		system.Credit(commission)
		if err = r.SaveAccount(ctx, system); err != nil {
			return err
		}

		if err = s.settle(ctx, r, req, sender, receiver); err != nil {
			return err
		}

		receipt = fmt.Sprintf("Transfer of %s from %s to %s completed successfully. A commission of %s has been deducted from your account.",
			FormatAmount(req.Amount), sender.Username, receiver.Username, FormatAmount(commission))
		return nil
	})
	s.observer.ObserveOperation(OperationCommissionTransfer, req.Amount, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "commission transfer failed", "sender", senderEmail, "receiver", req.FriendName, "error", err)
		return "", err
	}

	s.observer.ObserveCommission(commission)
	s.logger.InfoContext(ctx, "commission transfer completed",
		"sender", senderEmail,
		"receiver", req.FriendName,
		"amount", FormatAmount(req.Amount),
		"commission", FormatAmount(commission),
	)
	return receipt, nil
}

// ListSentTransactions returns the transfers the user sent, oldest first.
func (s Service) ListSentTransactions(ctx context.Context, email string) ([]SentTransaction, error) {
	sender, err := findUserByEmail(ctx, s.repository, email)
	if err != nil {
		return nil, err
	}

	transactions, err := s.repository.ListTransactionsBySender(ctx, sender.ID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	result := make([]SentTransaction, 0, len(transactions))
	for _, transaction := range transactions {
		name, ok := names[transaction.ReceiverID]
		if !ok {
			receiver, err := s.repository.FindAccountByID(ctx, transaction.ReceiverID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve receiver %d: %w", transaction.ReceiverID, err)
			}
			name = receiver.Username
			names[transaction.ReceiverID] = name
		}

		result = append(result, toSentTransaction(transaction, name))
	}

	return result, nil
}

func toSentTransaction(transaction Transaction, friendName string) SentTransaction {
	return SentTransaction{
		FriendName:  friendName,
		Amount:      FormatAmount(transaction.Amount),
		Description: transaction.Description,
	}
}

// authorizeTransfer resolves both parties and runs every check that must
// pass before a balance is touched.
func (s Service) authorizeTransfer(ctx context.Context, r Repository, senderEmail string, req TransferRequest) (Account, Account, error) {
	sender, err := findUserByEmail(ctx, r, senderEmail)
	if err != nil {
		return Account{}, Account{}, err
	}

	receiver, err := findUserByUsername(ctx, r, req.FriendName)
	if err != nil {
		return Account{}, Account{}, err
	}

	if err = AssertCanSendTo(receiver, sender); err != nil {
		return Account{}, Account{}, err
	}

	if !req.Amount.IsPositive() {
		return Account{}, Account{}, ErrNonPositiveAmount
	}

	return sender, receiver, nil
}

func (s Service) settle(ctx context.Context, r Repository, req TransferRequest, sender, receiver Account) error {
	if err := r.SaveAccount(ctx, sender); err != nil {
		return err
	}

	if err := r.SaveAccount(ctx, receiver); err != nil {
		return err
	}

	_, err := r.AddTransaction(ctx, Transaction{
		Reference:   uuid.New(),
		SenderID:    sender.ID,
		ReceiverID:  receiver.ID,
		Amount:      req.Amount,
		Description: req.Description,
		ExecutedAt:  s.now().UTC(),
	})
	return err
}
