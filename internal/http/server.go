package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"buddypay/internal/port"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// Instrumentation times requests and serves the scrape endpoint.
type Instrumentation interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

type Server struct {
	httpServer *http.Server
	handler    Handler
	logger     Logger
}

func NewServer(
	ledger port.Ledger,
	tokens TokenService,
	instrumentation Instrumentation,
	logger Logger,
	config Config,
) *Server {
	handler := NewHandler(ledger, tokens, logger)

	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      NewRouter(handler, tokens, instrumentation, logger),
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		logger:     logger,
	}
}

// NewRouter mounts every endpoint. instrumentation may be nil.
func NewRouter(handler Handler, tokens TokenService, instrumentation Instrumentation, logger Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	if instrumentation != nil {
		r.Use(instrumentation.Middleware)
		r.Method(http.MethodGet, "/metrics", instrumentation.Handler())
	}

	r.Get("/health", handler.Health)

	r.Post("/auth/register/v0", handler.PostRegister)
	r.Post("/auth/login/v0", handler.PostLogin)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(tokens, handler.ledger, logger))

		r.Post("/users/me/friends/v0", handler.PostFriend)
		r.Get("/users/me/friends/v0", handler.GetFriends)
		r.Patch("/users/me/v0", handler.PatchProfile)

		r.Post("/transactions/v0/me", handler.PostTransaction)
		r.Post("/transactions/v1/me", handler.PostTransactionWithCommission)
		r.Get("/transactions/v0/me", handler.GetTransactions)

		r.Post("/transfer-from-bank/v0", handler.PostTransferFromBank)
		r.Post("/transfer-to-bank/v0", handler.PostTransferToBank)
	})

	return r
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
