package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/model"
)

func movs(vals ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testBank(t *testing.T) (*Bank, *model.Account, *model.Account) {
	t.Helper()
	a := model.NewAccount("Alice Archer", decimal.NewFromFloat(1.2), 1111, movs(500))
	b := model.NewAccount("Bob Byrne", decimal.NewFromFloat(1.5), 2222, movs(100))
	return New([]*model.Account{a, b}, DefaultPolicy()), a, b
}

func TestAuthenticate(t *testing.T) {
	bk, a, _ := testBank(t)

	got, err := bk.Authenticate("aa", 1111)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = bk.Authenticate("aa", 9999)
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = bk.Authenticate("zz", 1111)
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestNew_DuplicateUsernameFirstWins(t *testing.T) {
	first := model.NewAccount("Sam Smith", amt(1), 1234, movs(10))
	second := model.NewAccount("Sue Stone", amt(1), 5678, movs(20))
	require.Equal(t, first.Username, second.Username)

	bk := New([]*model.Account{first, second}, DefaultPolicy())
	assert.Equal(t, 1, bk.Len())

	got, err := bk.Authenticate("ss", 1234)
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestTransfer(t *testing.T) {
	bk, a, b := testBank(t)

	require.NoError(t, bk.Transfer(a, "bb", amt(500)))
	assert.True(t, bk.Balance(a).IsZero(), "sender drained to zero")
	assert.True(t, bk.Balance(b).Equal(amt(600)), "recipient gained exactly 500")
	assert.Len(t, a.Movements, 2)
	assert.Len(t, b.Movements, 2)
	assert.True(t, a.Movements[1].Equal(amt(-500)))
	assert.True(t, b.Movements[1].Equal(amt(500)))
}

func TestTransfer_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		to     string
		amount decimal.Decimal
		want   error
	}{
		{"zero amount", "bb", amt(0), ErrBadAmount},
		{"negative amount", "bb", amt(-10), ErrBadAmount},
		{"unknown recipient", "zz", amt(10), ErrUnknownRecipient},
		{"self transfer", "aa", amt(10), ErrSelfTransfer},
		{"insufficient funds", "bb", amt(600), ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk, a, b := testBank(t)
			err := bk.Transfer(a, tt.to, tt.amount)
			assert.ErrorIs(t, err, tt.want)
			// Rejection leaves both movement lists untouched.
			assert.Len(t, a.Movements, 1)
			assert.Len(t, b.Movements, 1)
		})
	}
}

func TestRequestLoan(t *testing.T) {
	policy := DefaultPolicy()
	history := movs(430, 1000, 700, 50, 90)

	t.Run("granted when a movement reaches 10 percent", func(t *testing.T) {
		acct := model.NewAccount("Sarah Smith", amt(1), 4444, movs(430, 1000, 700, 50, 90))
		bk := New([]*model.Account{acct}, policy)

		// 4000 needs a movement of at least 400; 1000 qualifies.
		require.NoError(t, bk.RequestLoan(acct, amt(4000)))
		require.Len(t, acct.Movements, len(history)+1)
		assert.True(t, acct.Movements[len(history)].Equal(amt(4000)), "loan appended as deposit")
	})

	t.Run("rejected when no movement reaches 10 percent", func(t *testing.T) {
		acct := model.NewAccount("Sarah Smith", amt(1), 4444, movs(430, 1000, 700, 50, 90))
		bk := New([]*model.Account{acct}, policy)

		// 20000 needs a movement of at least 2000; none reaches it.
		err := bk.RequestLoan(acct, amt(20000))
		assert.ErrorIs(t, err, ErrLoanNotEligible)
		assert.Len(t, acct.Movements, len(history))
	})

	t.Run("rejected for non-positive amount", func(t *testing.T) {
		acct := model.NewAccount("Sarah Smith", amt(1), 4444, movs(430))
		bk := New([]*model.Account{acct}, policy)

		assert.ErrorIs(t, bk.RequestLoan(acct, amt(0)), ErrBadAmount)
		assert.ErrorIs(t, bk.RequestLoan(acct, amt(-5)), ErrBadAmount)
	})
}

func TestClose(t *testing.T) {
	bk, a, _ := testBank(t)

	require.NoError(t, bk.Close(a, "aa", 1111))
	assert.Equal(t, 1, bk.Len())
	_, ok := bk.Lookup("aa")
	assert.False(t, ok)

	// Closing twice fails: the account is gone.
	assert.ErrorIs(t, bk.Close(a, "aa", 1111), ErrNotFound)
}

func TestClose_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		pin      int
	}{
		{"wrong pin", "aa", 9999},
		{"wrong username", "bb", 1111},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk, a, _ := testBank(t)
			err := bk.Close(a, tt.username, tt.pin)
			assert.ErrorIs(t, err, ErrCloseMismatch)
			assert.Equal(t, 2, bk.Len(), "account set unchanged")
		})
	}
}

func TestMovements_SortedCopy(t *testing.T) {
	acct := model.NewAccount("Steven Thomas Williams", amt(1), 3333, movs(200, -200, 340, -300))
	bk := New([]*model.Account{acct}, DefaultPolicy())

	sorted := bk.Movements(acct, true)
	require.Len(t, sorted, 4)
	assert.True(t, sorted[0].Equal(amt(-300)))
	assert.True(t, sorted[3].Equal(amt(340)))
	assert.True(t, acct.Movements[0].Equal(amt(200)), "stored order untouched")
}

func TestAll_RegistrationOrder(t *testing.T) {
	bk, a, b := testBank(t)
	all := bk.All()
	require.Len(t, all, 2)
	assert.Same(t, a, all[0])
	assert.Same(t, b, all[1])
}
