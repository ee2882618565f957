package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/seed"
)

func newAccountsCommand() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Seed account operations",
	}
	accountsCmd.AddCommand(newAccountsListCommand())
	accountsCmd.AddCommand(newAccountsCheckCommand())
	return accountsCmd
}

func newAccountsListCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the seed accounts with their derived usernames and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			accounts, err := seed.Load(cfg.Seed.Path)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "USERNAME\tOWNER\tRATE\tMOVEMENTS\tBALANCE")
			for _, a := range accounts {
				fmt.Fprintf(tw, "%s\t%s\t%s%%\t%d\t%s\n",
					a.Username, a.Owner, a.InterestRate, len(a.Movements),
					ledger.Balance(a.Movements))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bankist.yaml", "config file path")

	return cmd
}

func newAccountsCheckCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the seed accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			accounts, err := seed.Load(cfg.Seed.Path)
			if err != nil {
				return err
			}

			errs := seed.Validate(accounts)
			if len(errs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d accounts OK\n", len(accounts))
				return nil
			}
			for _, verr := range errs {
				fmt.Fprintln(cmd.OutOrStdout(), verr.Error())
			}
			return fmt.Errorf("%d seed problem(s) found", len(errs))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bankist.yaml", "config file path")

	return cmd
}
