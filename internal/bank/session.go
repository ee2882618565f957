package bank

import (
	"sync"

	"github.com/bankist-dev/bankist/internal/model"
)

// Session tracks the single currently authenticated account. It starts
// logged out, is set by a successful login, and is cleared on logout or when
// the account is closed. Only one account is active at a time; a new login
// replaces the previous one.
type Session struct {
	mu      sync.Mutex
	current *model.Account
}

// NewSession returns a logged-out session.
func NewSession() *Session {
	return &Session{}
}

// Login makes acct the active account, replacing any previous one.
func (s *Session) Login(acct *model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = acct
}

// Logout clears the active account.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the active account, if any.
func (s *Session) Current() (*model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}
