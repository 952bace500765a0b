package http

import (
	"encoding/json"

	"buddypay/internal/core"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

func (req RegisterRequest) ToDomain() core.RegisterRequest {
	return core.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileUpdateRequest leaves a field unchanged when it is omitted.
type ProfileUpdateRequest struct {
	Username string `json:"username" validate:"omitempty,max=50"`
	Email    string `json:"email" validate:"omitempty,email,max=100"`
	Password string `json:"password"`
}

func (req ProfileUpdateRequest) ToDomain() core.ProfileUpdate {
	return core.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

// TransferRequest accepts the amount either as a JSON number or as a quoted
// decimal string.
type TransferRequest struct {
	FriendName  string      `json:"friend_name" validate:"required"`
	Amount      json.Number `json:"amount" validate:"required"`
	Description string      `json:"description" validate:"max=255"`
}

func (req TransferRequest) ToDomain() (core.TransferRequest, error) {
	amount, err := core.ParseAmount(string(req.Amount))
	if err != nil {
		return core.TransferRequest{}, err
	}

	return core.TransferRequest{
		FriendName:  req.FriendName,
		Amount:      amount,
		Description: req.Description,
	}, nil
}

type BankTransferRequest struct {
	IBAN       string      `json:"iban" validate:"required"`
	BankHolder string      `json:"bank_holder" validate:"required"`
	Amount     json.Number `json:"amount" validate:"required"`
}

func (req BankTransferRequest) ToDomain() (core.BankTransferRequest, error) {
	amount, err := core.ParseAmount(string(req.Amount))
	if err != nil {
		return core.BankTransferRequest{}, err
	}

	return core.BankTransferRequest{
		IBAN:       req.IBAN,
		BankHolder: req.BankHolder,
		Amount:     amount,
	}, nil
}

type BankTransferResponse struct {
	ReceiverName string `json:"receiver_name"`
	NewBalance   string `json:"new_balance"`
}

type BankWithdrawResponse struct {
	ReceiverName    string `json:"receiver_name"`
	WithdrawnAmount string `json:"withdrawn_amount"`
	NewBalance      string `json:"new_balance"`
}

type FriendResponse struct {
	FriendName string `json:"friend_name"`
}

type TransactionResponse struct {
	FriendName  string `json:"friend_name"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func toBankTransferResponse(result core.BankTransferResult) BankTransferResponse {
	return BankTransferResponse{
		ReceiverName: result.ReceiverName,
		NewBalance:   result.NewBalance,
	}
}

func toBankWithdrawResponse(result core.WithdrawalResult) BankWithdrawResponse {
	return BankWithdrawResponse{
		ReceiverName:    result.ReceiverName,
		WithdrawnAmount: result.WithdrawnAmount,
		NewBalance:      result.NewBalance,
	}
}

func toFriendResponses(friends []core.Friend) []FriendResponse {
	out := make([]FriendResponse, 0, len(friends))
	for _, friend := range friends {
		out = append(out, FriendResponse{FriendName: friend.FriendName})
	}
	return out
}

func toTransactionResponses(transactions []core.SentTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, TransactionResponse{
			FriendName:  transaction.FriendName,
			Amount:      transaction.Amount,
			Description: transaction.Description,
		})
	}
	return out
}
