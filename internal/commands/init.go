package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/seed"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter bankist.yaml and seed accounts file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "Bankist", "bank display name")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	seedPath := filepath.Join(dir, "accounts.csv")
	if err := seed.Save(seedPath, seed.DefaultAccounts()); err != nil {
		return fmt.Errorf("writing seed accounts: %w", err)
	}

	cfg := config.Default()
	cfg.Bank.Name = name
	cfg.Seed.Path = "accounts.csv"
	cfgPath := filepath.Join(dir, "bankist.yaml")
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s at %s\n", name, dir)
	return nil
}
