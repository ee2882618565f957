package seed

import (
	"fmt"
	"os"

	"github.com/bankist-dev/bankist/internal/model"
)

// Load returns the starting account set: the CSV at path when one is
// configured, otherwise the built-in demo accounts.
func Load(path string) ([]*model.Account, error) {
	if path == "" {
		return DefaultAccounts(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	accounts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return accounts, nil
}

// Save writes accounts to path as a seed CSV.
func Save(path string, accounts []*model.Account) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating seed file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, accounts); err != nil {
		return fmt.Errorf("writing seed file %s: %w", path, err)
	}
	return nil
}
