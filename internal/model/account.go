package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is one customer account. Movements are ordered oldest-first and
// append-only; positive amounts are deposits, negative are withdrawals.
type Account struct {
	Owner        string
	Username     string          // derived from Owner at construction
	InterestRate decimal.Decimal // percent per qualifying deposit
	PIN          int
	Movements    []decimal.Decimal
}

// NewAccount builds an Account with its username derived from owner.
// The username is fixed for the lifetime of the account.
func NewAccount(owner string, interestRate decimal.Decimal, pin int, movements []decimal.Decimal) *Account {
	return &Account{
		Owner:        owner,
		Username:     DeriveUsername(owner),
		InterestRate: interestRate,
		PIN:          pin,
		Movements:    movements,
	}
}

// DeriveUsername returns the lowercase initials of each whitespace-separated
// word in owner, concatenated in order. "Steven Thomas Williams" -> "stw".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		b.WriteByte(word[0])
	}
	return b.String()
}

// FirstName returns the first word of the owner's name, used for greetings.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
