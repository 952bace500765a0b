package http

import (
	"net/http"
)

func (h Handler) PostTransferFromBank(w http.ResponseWriter, r *http.Request) {
	email, ok := h.currentEmail(w, r)
	if !ok {
		return
	}

	var req BankTransferRequest
	if !h.decode(w, r, &req) {
		return
	}

	transfer, err := req.ToDomain()
	if err != nil {
		h.writeError(w, r, err, "Invalid bank transfer request")
		return
	}

	result, err := h.ledger.PerformBankTransfer(r.Context(), email, transfer)
	if err != nil {
		h.writeError(w, r, err, "Failed to transfer from bank")
		return
	}

	writeJSON(w, http.StatusOK, toBankTransferResponse(result))
}

func (h Handler) PostTransferToBank(w http.ResponseWriter, r *http.Request) {
	email, ok := h.currentEmail(w, r)
	if !ok {
		return
	}

	var req BankTransferRequest
	if !h.decode(w, r, &req) {
		return
	}

	transfer, err := req.ToDomain()
	if err != nil {
		h.writeError(w, r, err, "Invalid bank transfer request")
		return
	}

	result, err := h.ledger.PerformWithdrawal(r.Context(), email, transfer)
	if err != nil {
		h.writeError(w, r, err, "Failed to transfer to bank")
		return
	}

	writeJSON(w, http.StatusOK, toBankWithdrawResponse(result))
}
