package http

import (
	"context"
	"net/http"

	"buddypay/internal/core"
)

type sendFunc func(ctx context.Context, senderEmail string, req core.TransferRequest) (string, error)

func (h Handler) PostTransaction(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, h.ledger.SendMoneyToFriend)
}

func (h Handler) PostTransactionWithCommission(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, h.ledger.SendMoneyWithCommission)
}

func (h Handler) send(w http.ResponseWriter, r *http.Request, send sendFunc) {
	email, ok := h.currentEmail(w, r)
	if !ok {
		return
	}

	var req TransferRequest
	if !h.decode(w, r, &req) {
		return
	}

	transfer, err := req.ToDomain()
	if err != nil {
		h.writeError(w, r, err, "Invalid transfer request")
		return
	}

	receipt, err := send(r.Context(), email, transfer)
	if err != nil {
		h.writeError(w, r, err, "Failed to process transfer")
		return
	}

	writeText(w, http.StatusOK, receipt)
}

func (h Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	email, ok := h.currentEmail(w, r)
	if !ok {
		return
	}

	transactions, err := h.ledger.ListSentTransactions(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err, "Failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponses(transactions))
}
