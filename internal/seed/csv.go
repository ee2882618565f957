// Package seed loads the bank's starting account set, either from built-in
// demo data or from an accounts CSV. Seed data is read once at startup;
// nothing is written back during a session.
package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

const (
	numFields    = 4
	colOwner     = 0
	colRate      = 1
	colPIN       = 2
	colMovements = 3

	// movementSep joins the movement history into a single CSV field.
	movementSep = ";"
)

// ReadAccounts reads a seed CSV (owner,interest_rate,pin,movements) into
// accounts, deriving usernames as it goes.
func ReadAccounts(r io.Reader) ([]*model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading seed CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []*model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes accounts as a seed CSV, including the header.
func WriteAccounts(w io.Writer, accounts []*model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"owner", "interest_rate", "pin", "movements"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a seed CSV row.
func MarshalAccount(acct *model.Account) []string {
	row := make([]string, numFields)
	row[colOwner] = acct.Owner
	row[colRate] = acct.InterestRate.String()
	row[colPIN] = strconv.Itoa(acct.PIN)

	parts := make([]string, len(acct.Movements))
	for i, m := range acct.Movements {
		parts[i] = m.String()
	}
	row[colMovements] = strings.Join(parts, movementSep)
	return row
}

// UnmarshalAccount converts a seed CSV row to an Account.
func UnmarshalAccount(record []string) (*model.Account, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	rate, err := decimal.NewFromString(record[colRate])
	if err != nil {
		return nil, fmt.Errorf("parsing interest_rate %q: %w", record[colRate], err)
	}

	pin, err := strconv.Atoi(record[colPIN])
	if err != nil {
		return nil, fmt.Errorf("parsing pin %q: %w", record[colPIN], err)
	}

	var movements []decimal.Decimal
	if record[colMovements] != "" {
		for _, part := range strings.Split(record[colMovements], movementSep) {
			m, err := decimal.NewFromString(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("parsing movement %q: %w", part, err)
			}
			movements = append(movements, m)
		}
	}

	return model.NewAccount(record[colOwner], rate, pin, movements), nil
}
