package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"buddypay/internal/core"
)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNonexistentEntity):
		return http.StatusNotFound
	case errors.Is(err, core.ErrEntityAlreadyExists), errors.Is(err, core.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, core.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, core.ErrInvalidData):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the error text for known failure kinds and hides
// everything else behind a logged 500.
func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), msg, "error", err)
		http.Error(w, msg, status)
		return
	}

	http.Error(w, err.Error(), status)
}

// writeValidationError answers 400 with one message per offending field.
func writeValidationError(w http.ResponseWriter, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = fieldMessage(fieldErr)
	}

	writeJSON(w, http.StatusBadRequest, fields)
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "amount":
		return "amount is mandatory and must be positive"
	case "friend_email":
		return "friend_email is mandatory and must be a valid email address"
	}

	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is mandatory"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	default:
		return fieldErr.Field() + " is invalid"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
