package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"buddypay/internal/core"
)

type contextKey struct{}

var emailKey contextKey

type TokenService interface {
	Issue(accountID int64) (string, error)
	Parse(token string) (int64, error)
}

// AccountResolver maps the account ID of a token to the account's current
// email.
type AccountResolver interface {
	AccountEmail(ctx context.Context, accountID int64) (string, error)
}

func withEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

func emailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok && email != ""
}

func loggingMiddleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.InfoContext(
				r.Context(),
				"request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// authMiddleware admits requests carrying a valid bearer token for an
// existing account and exposes that account's current email to the handlers.
func authMiddleware(tokens TokenService, accounts AccountResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			accountID, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			email, err := accounts.AccountEmail(r.Context(), accountID)
			if errors.Is(err, core.ErrNonexistentEntity) {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}
			if err != nil {
				logger.ErrorContext(r.Context(), "Failed to resolve token account", "account_id", accountID, "error", err)
				http.Error(w, "Failed to authenticate request", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(withEmail(r.Context(), email)))
		})
	}
}
