package commands

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/log"
	"github.com/bankist-dev/bankist/internal/seed"
	"github.com/bankist-dev/bankist/internal/server"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bank over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bankist.yaml", "config file path")

	return cmd
}

func runServe(cfg *config.Config) error {
	logger := log.Default(cfg.Log.Level, cfg.Log.Format)

	bk, err := buildBank(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(bk, logger, cfg.Bank.Currency)
	logger.Info("listening",
		slog.String("addr", cfg.Server.Listen),
		slog.Int("accounts", bk.Len()))

	if err := http.ListenAndServe(cfg.Server.Listen, srv.Router()); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// buildBank loads seed accounts, reports validation findings, and constructs
// the bank with the configured policy.
func buildBank(cfg *config.Config, logger *slog.Logger) (*bank.Bank, error) {
	accounts, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		return nil, fmt.Errorf("seeding accounts: %w", err)
	}

	for _, verr := range seed.Validate(accounts) {
		logger.Warn("seed check", slog.String("problem", verr.Error()))
	}

	return bank.New(accounts, policyFromConfig(cfg)), nil
}

func policyFromConfig(cfg *config.Config) bank.Policy {
	return bank.Policy{
		MinInterestCredit: decimal.NewFromFloat(cfg.Thresholds.MinInterestCredit),
		LoanMovementRatio: decimal.NewFromFloat(cfg.Thresholds.LoanMovementRatio),
	}
}
