package seed

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// DefaultAccounts returns the four built-in demo accounts used when no seed
// file is configured.
func DefaultAccounts() []*model.Account {
	return []*model.Account{
		model.NewAccount("Jonas Schmedtmann", decimal.NewFromFloat(1.2), 1111,
			movements(200, 450, -400, 3000, -650, -130, 70, 1300)),
		model.NewAccount("Jessica Davis", decimal.NewFromFloat(1.5), 2222,
			movements(5000, 3400, -150, -790, -3210, -1000, 8500, -30)),
		model.NewAccount("Steven Thomas Williams", decimal.NewFromFloat(0.7), 3333,
			movements(200, -200, 340, -300, -20, 50, 400, -460)),
		model.NewAccount("Sarah Smith", decimal.NewFromInt(1), 4444,
			movements(430, 1000, 700, 50, 90)),
	}
}

func movements(vals ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}
