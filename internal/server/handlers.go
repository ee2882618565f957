package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bankist-dev/bankist/internal/bank"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Pin      any    `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pin, err := coercePin(req.Pin)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid username or pin")
		return
	}

	acct, err := s.bank.Authenticate(req.Username, pin)
	if err != nil {
		s.logger.Warn("login rejected", slog.String("username", req.Username))
		writeDomainError(w, err)
		return
	}

	token := s.startSession(acct)
	s.logger.Info("login", slog.String("username", acct.Username))

	writeJSON(w, http.StatusOK, map[string]string{
		"token":      token,
		"owner":      acct.Owner,
		"first_name": acct.FirstName(),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentAccount(r); !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	s.endSession()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.currentAccount(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	ascending := r.URL.Query().Get("sorted") == "true"
	summary := s.bank.Summary(acct)

	writeJSON(w, http.StatusOK, dashboardResponse{
		Owner:     acct.Owner,
		FirstName: acct.FirstName(),
		Currency:  s.currency,
		Movements: s.bank.Movements(acct, ascending),
		Balance:   s.bank.Balance(acct),
		Summary: summaryResponse{
			Income:   summary.Income,
			Outflow:  summary.Outflow,
			Interest: summary.Interest,
		},
	})
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.currentAccount(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		To     string `json:"to"`
		Amount any    `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := coerceAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	if err := s.bank.Transfer(acct, req.To, amount); err != nil {
		s.logger.Warn("transfer rejected",
			slog.String("from", acct.Username),
			slog.String("to", req.To),
			slog.String("reason", err.Error()))
		writeDomainError(w, err)
		return
	}

	s.logger.Info("transfer",
		slog.String("from", acct.Username),
		slog.String("to", req.To),
		slog.String("amount", amount.String()))
	writeJSON(w, http.StatusOK, map[string]string{
		"balance": s.bank.Balance(acct).String(),
	})
}

func (s *Server) handleLoan(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.currentAccount(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		Amount any `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := coerceAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	if err := s.bank.RequestLoan(acct, amount); err != nil {
		writeDomainError(w, err)
		return
	}

	s.logger.Info("loan granted",
		slog.String("username", acct.Username),
		slog.String("amount", amount.String()))
	writeJSON(w, http.StatusOK, map[string]string{
		"balance": s.bank.Balance(acct).String(),
	})
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.currentAccount(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	var req struct {
		Username string `json:"username"`
		Pin      any    `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pin, err := coercePin(req.Pin)
	if err != nil {
		// A non-numeric confirmation pin can never match.
		writeDomainError(w, bank.ErrCloseMismatch)
		return
	}

	if err := s.bank.Close(acct, req.Username, pin); err != nil {
		writeDomainError(w, err)
		return
	}

	s.endSession()
	s.logger.Info("account closed", slog.String("username", acct.Username))
	w.WriteHeader(http.StatusNoContent)
}
