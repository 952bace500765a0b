package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"buddypay/internal/port"
)

type Handler struct {
	ledger   port.Ledger
	tokens   TokenService
	validate *validator.Validate
	logger   Logger
}

func NewHandler(ledger port.Ledger, tokens TokenService, logger Logger) Handler {
	return Handler{
		ledger:   ledger,
		tokens:   tokens,
		validate: newValidator(),
		logger:   logger,
	}
}

// decode reads a JSON body into dst and validates it. It writes the 400
// response itself and reports false when the request must stop.
func (h Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		writeValidationError(w, err)
		return false
	}

	return true
}

// currentEmail returns the authenticated user's email. Routes that reach it
// always sit behind authMiddleware.
func (h Handler) currentEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := emailFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
	}
	return email, ok
}

func (h Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}
