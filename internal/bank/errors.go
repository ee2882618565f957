package bank

import "errors"

// Domain errors. Every rejected operation leaves all accounts untouched.
var (
	// ErrBadCredentials means no account matched the username/pin pair.
	ErrBadCredentials = errors.New("invalid username or pin")

	// ErrBadAmount means the requested amount was zero or negative.
	ErrBadAmount = errors.New("amount must be positive")

	// ErrUnknownRecipient means the transfer target username does not exist.
	ErrUnknownRecipient = errors.New("recipient not found")

	// ErrInsufficientFunds means the sender's balance cannot cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfTransfer means the transfer target is the sending account.
	ErrSelfTransfer = errors.New("cannot transfer to own account")

	// ErrLoanNotEligible means no movement clears the loan qualification threshold.
	ErrLoanNotEligible = errors.New("no movement qualifies for the requested loan")

	// ErrCloseMismatch means the close confirmation credentials do not match.
	ErrCloseMismatch = errors.New("confirmation credentials do not match")

	// ErrNotFound means the account is not (or no longer) registered.
	ErrNotFound = errors.New("account not found")
)
