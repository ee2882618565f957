// Package bank owns the mutable account set and the mutation rules: peer
// transfers, loan grants, and account closure. A single mutex serializes
// every operation, so a transfer's two appends are observed together or not
// at all, even when the bank is wrapped by a concurrent server.
package bank

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
)

// Policy carries the configurable thresholds applied by the bank.
type Policy struct {
	// MinInterestCredit is the smallest per-deposit interest amount that is
	// actually credited.
	MinInterestCredit decimal.Decimal

	// LoanMovementRatio is the fraction of a requested loan that some existing
	// movement must reach for the loan to be granted.
	LoanMovementRatio decimal.Decimal
}

// DefaultPolicy returns the thresholds the demo data was designed around.
func DefaultPolicy() Policy {
	return Policy{
		MinInterestCredit: decimal.NewFromInt(1),
		LoanMovementRatio: decimal.NewFromFloat(0.1),
	}
}

// Bank is the account set plus the policy applied to it. Accounts are keyed
// by derived username; registration order is preserved for listing.
type Bank struct {
	mu     sync.Mutex
	policy Policy
	order  []string
	accts  map[string]*model.Account
}

// New builds a Bank from seed accounts. When two accounts derive the same
// username the first registration wins and later ones are ignored, matching
// the first-match login rule.
func New(accounts []*model.Account, policy Policy) *Bank {
	b := &Bank{
		policy: policy,
		accts:  make(map[string]*model.Account, len(accounts)),
	}
	for _, a := range accounts {
		if _, taken := b.accts[a.Username]; taken {
			continue
		}
		b.accts[a.Username] = a
		b.order = append(b.order, a.Username)
	}
	return b
}

// All returns the registered accounts in registration order.
func (b *Bank) All() []*model.Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*model.Account, 0, len(b.order))
	for _, u := range b.order {
		out = append(out, b.accts[u])
	}
	return out
}

// Len returns the number of registered accounts.
func (b *Bank) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accts)
}

// Lookup returns the account registered under username.
func (b *Bank) Lookup(username string) (*model.Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	return a, ok
}

// Authenticate returns the account whose username and pin both match, or
// ErrBadCredentials. A username with a wrong pin gives the same error as an
// unknown username.
func (b *Bank) Authenticate(username string, pin int) (*model.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok || a.PIN != pin {
		return nil, ErrBadCredentials
	}
	return a, nil
}

// Balance recomputes the account's balance from its movements.
func (b *Bank) Balance(acct *model.Account) decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ledger.Balance(acct.Movements)
}

// Summary recomputes the account's income, outflow, and credited interest.
func (b *Bank) Summary(acct *model.Account) ledger.Summary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ledger.Summarize(acct.Movements, acct.InterestRate, b.policy.MinInterestCredit)
}

// Movements returns a display copy of the account's movements, ascending
// when requested. The stored order is never changed.
func (b *Bank) Movements(acct *model.Account, ascending bool) []decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ledger.SortedMovements(acct.Movements, ascending)
}

// Transfer moves amount from one account to the recipient registered under
// toUsername. The withdrawal and the deposit are appended inside the same
// critical section; a rejection leaves both accounts untouched.
func (b *Bank) Transfer(from *model.Account, toUsername string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	to, ok := b.accts[toUsername]
	if !ok {
		return ErrUnknownRecipient
	}
	if to == from {
		return ErrSelfTransfer
	}
	if ledger.Balance(from.Movements).LessThan(amount) {
		return ErrInsufficientFunds
	}

	from.Movements = append(from.Movements, amount.Neg())
	to.Movements = append(to.Movements, amount)
	return nil
}

// RequestLoan grants amount when some existing movement reaches the policy
// ratio of the request. Any movement counts, deposit or withdrawal, as long
// as its signed value clears the threshold; on grant the loan is appended as
// a deposit.
func (b *Bank) RequestLoan(acct *model.Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	threshold := amount.Mul(b.policy.LoanMovementRatio)
	for _, m := range acct.Movements {
		if m.GreaterThanOrEqual(threshold) {
			acct.Movements = append(acct.Movements, amount)
			return nil
		}
	}
	return ErrLoanNotEligible
}

// Close removes the account after the confirmation credentials match it
// exactly. The caller is responsible for clearing any session that still
// points at the account.
func (b *Bank) Close(acct *model.Account, confirmUsername string, confirmPin int) error {
	if confirmUsername != acct.Username || confirmPin != acct.PIN {
		return ErrCloseMismatch
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	registered, ok := b.accts[acct.Username]
	if !ok || registered != acct {
		return ErrNotFound
	}

	delete(b.accts, acct.Username)
	for i, u := range b.order {
		if u == acct.Username {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}
