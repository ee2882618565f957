package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/bank"
)

type dashboardResponse struct {
	Owner     string            `json:"owner"`
	FirstName string            `json:"first_name"`
	Currency  string            `json:"currency"`
	Movements []decimal.Decimal `json:"movements"`
	Balance   decimal.Decimal   `json:"balance"`
	Summary   summaryResponse   `json:"summary"`
}

type summaryResponse struct {
	Income   decimal.Decimal `json:"income"`
	Outflow  decimal.Decimal `json:"outflow"`
	Interest decimal.Decimal `json:"interest"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps engine rejections to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, bank.ErrBadCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, bank.ErrUnknownRecipient), errors.Is(err, bank.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, bank.ErrInsufficientFunds), errors.Is(err, bank.ErrLoanNotEligible):
		status = http.StatusConflict
	case errors.Is(err, bank.ErrCloseMismatch):
		status = http.StatusForbidden
	}
	writeError(w, status, err.Error())
}
