package core

import (
	"context"
)

// PerformBankTransfer funds the user's balance from the bank account named
// in req.
func (s Service) PerformBankTransfer(ctx context.Context, email string, req BankTransferRequest) (BankTransferResult, error) {
	var result BankTransferResult
	err := s.bankMovement(ctx, email, req, func(account *Account) error {
		account.Credit(req.Amount)
		result = BankTransferResult{
			ReceiverName: account.Username,
			NewBalance:   FormatAmount(account.Balance),
		}
		return nil
	})
	s.observer.ObserveOperation(OperationBankDeposit, req.Amount, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "transfer from bank failed", "email", email, "error", err)
		return BankTransferResult{}, err
	}

	s.logger.InfoContext(ctx, "transfer from bank completed", "email", email, "amount", FormatAmount(req.Amount))
	return result, nil
}

// PerformWithdrawal moves money from the user's balance back to the bank
// account named in req. The amount is rounded half-to-even before the debit.
func (s Service) PerformWithdrawal(ctx context.Context, email string, req BankTransferRequest) (WithdrawalResult, error) {
	amount := RoundBalance(req.Amount)
	req.Amount = amount

	var result WithdrawalResult
	err := s.bankMovement(ctx, email, req, func(account *Account) error {
		if err := account.Debit(amount); err != nil {
			return err
		}
		result = WithdrawalResult{
			ReceiverName:    account.Username,
			WithdrawnAmount: FormatAmount(amount),
			NewBalance:      FormatAmount(account.Balance),
		}
		return nil
	})
	s.observer.ObserveOperation(OperationBankWithdrawal, amount, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "transfer to bank failed", "email", email, "error", err)
		return WithdrawalResult{}, err
	}

	s.logger.InfoContext(ctx, "transfer to bank completed", "email", email, "amount", FormatAmount(amount))
	return result, nil
}

// bankMovement resolves the user before validating the bank details, so an
// unknown user is reported as such whatever the request holds.
func (s Service) bankMovement(ctx context.Context, email string, req BankTransferRequest, apply func(account *Account) error) error {
	return s.repository.Atomic(ctx, func(r Repository) error {
		account, err := findUserByEmail(ctx, r, email)
		if err != nil {
			return err
		}

		if err = req.Validate(); err != nil {
			return err
		}

		if err = apply(&account); err != nil {
			return err
		}

		return r.SaveAccount(ctx, account)
	})
}
