// Package server exposes the ledger engine over HTTP. It enforces the
// single-session rule: logging in issues a fresh token and invalidates any
// previous one, so at most one client drives the bank at a time.
package server

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/model"
)

// Server is the HTTP layer over a Bank. All engine mutations go through the
// bank's own serialization; the server only guards the token/session pair.
type Server struct {
	bank     *bank.Bank
	logger   *slog.Logger
	currency string

	mu      sync.Mutex
	session *bank.Session
	token   string // empty when logged out
}

// New creates a Server over bk. The currency code is echoed in dashboard
// responses for display.
func New(bk *bank.Bank, logger *slog.Logger, currency string) *Server {
	return &Server{
		bank:     bk,
		logger:   logger,
		currency: currency,
		session:  bank.NewSession(),
	}
}

// Router builds the chi router for the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/account", s.handleAccount)
		r.Post("/transfer", s.handleTransfer)
		r.Post("/loan", s.handleLoan)
		r.Post("/close", s.handleClose)
	})

	return r
}

// startSession logs the account in and returns its fresh token.
func (s *Server) startSession(acct *model.Account) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Login(acct)
	s.token = uuid.NewString()
	return s.token
}

// currentAccount resolves the request's bearer token to the active account.
func (s *Server) currentAccount(r *http.Request) (*model.Account, bool) {
	token := bearerToken(r)
	if token == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return nil, false
	}
	return s.session.Current()
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimPrefix(h, prefix)
}

// endSession clears the active session and token.
func (s *Server) endSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Logout()
	s.token = ""
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
