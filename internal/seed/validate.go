package seed

import (
	"fmt"

	"github.com/bankist-dev/bankist/internal/model"
)

// ValidationError describes a single problem with a seed account set.
type ValidationError struct {
	Check       int
	Username    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("check %d [%s]: %s", e.Check, e.Username, e.Description)
}

// Validate runs sanity checks over a seed account set. Duplicate usernames
// are reported but tolerated at load time, where the first registration wins.
func Validate(accounts []*model.Account) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]string, len(accounts))
	for _, a := range accounts {
		// Check 1: owner must derive a non-empty username.
		if a.Username == "" {
			errs = append(errs, ValidationError{
				Check:       1,
				Username:    a.Username,
				Description: fmt.Sprintf("owner %q derives an empty username", a.Owner),
			})
			continue
		}

		// Check 2: duplicate usernames make login ambiguous.
		if owner, dup := seen[a.Username]; dup {
			errs = append(errs, ValidationError{
				Check:       2,
				Username:    a.Username,
				Description: fmt.Sprintf("owners %q and %q share a username", owner, a.Owner),
			})
		} else {
			seen[a.Username] = a.Owner
		}

		// Check 3: pins are four-digit numeric credentials.
		if a.PIN < 0 || a.PIN > 9999 {
			errs = append(errs, ValidationError{
				Check:       3,
				Username:    a.Username,
				Description: fmt.Sprintf("pin %d outside 0000-9999", a.PIN),
			})
		}

		// Check 4: interest rates are non-negative percentages.
		if a.InterestRate.IsNegative() {
			errs = append(errs, ValidationError{
				Check:       4,
				Username:    a.Username,
				Description: fmt.Sprintf("negative interest rate %s", a.InterestRate),
			})
		}
	}

	return errs
}
