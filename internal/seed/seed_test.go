package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/model"
)

func TestDefaultAccounts(t *testing.T) {
	accounts := DefaultAccounts()
	require.Len(t, accounts, 4)

	usernames := make([]string, len(accounts))
	for i, a := range accounts {
		usernames[i] = a.Username
	}
	assert.Equal(t, []string{"js", "jd", "stw", "ss"}, usernames)

	assert.Equal(t, 1111, accounts[0].PIN)
	assert.Len(t, accounts[0].Movements, 8)
	assert.Len(t, accounts[3].Movements, 5)
	assert.Empty(t, Validate(accounts))
}

func TestLoad_Defaults(t *testing.T) {
	accounts, err := Load("")
	require.NoError(t, err)
	assert.Len(t, accounts, 4)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")
	require.NoError(t, Save(path, DefaultAccounts()))

	accounts, err := Load(path)
	require.NoError(t, err)
	require.Len(t, accounts, 4)
	assert.Equal(t, "Jessica Davis", accounts[1].Owner)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoad_UnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("owner,interest_rate,pin,movements\na,b,c,d\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	rate := decimal.NewFromInt(1)

	t.Run("duplicate usernames", func(t *testing.T) {
		accounts := []*model.Account{
			model.NewAccount("Sam Smith", rate, 1234, nil),
			model.NewAccount("Sue Stone", rate, 5678, nil),
		}
		errs := Validate(accounts)
		require.Len(t, errs, 1)
		assert.Equal(t, 2, errs[0].Check)
		assert.Contains(t, errs[0].Error(), "share a username")
	})

	t.Run("empty owner", func(t *testing.T) {
		errs := Validate([]*model.Account{model.NewAccount("", rate, 1234, nil)})
		require.Len(t, errs, 1)
		assert.Equal(t, 1, errs[0].Check)
	})

	t.Run("bad pin", func(t *testing.T) {
		errs := Validate([]*model.Account{model.NewAccount("Al Pine", rate, 123456, nil)})
		require.Len(t, errs, 1)
		assert.Equal(t, 3, errs[0].Check)
	})

	t.Run("negative rate", func(t *testing.T) {
		errs := Validate([]*model.Account{model.NewAccount("Al Pine", decimal.NewFromFloat(-0.5), 1234, nil)})
		require.Len(t, errs, 1)
		assert.Equal(t, 4, errs[0].Check)
	})
}
