package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/log"
)

func newDemoCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive banking session in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			bk, err := buildBank(cfg, logger)
			if err != nil {
				return err
			}

			return runDemo(bk, cfg.Bank.Currency, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bankist.yaml", "config file path")

	return cmd
}

// demo holds the interactive session state: the bank, the current login, and
// the sort toggle owned by the display layer.
type demo struct {
	bank     *bank.Bank
	session  *bank.Session
	currency string
	sorted   bool
	out      io.Writer
}

func runDemo(bk *bank.Bank, currency string, in io.Reader, out io.Writer) error {
	d := &demo{
		bank:     bk,
		session:  bank.NewSession(),
		currency: currency,
		out:      out,
	}

	fmt.Fprintln(out, "Log in to get started. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if quit := d.dispatch(fields[0], fields[1:]); quit {
			return nil
		}
	}
	return scanner.Err()
}

// dispatch runs one command; it returns true when the session should end.
func (d *demo) dispatch(command string, args []string) bool {
	switch command {
	case "help":
		d.printHelp()
	case "login":
		d.login(args)
	case "logout":
		d.session.Logout()
		d.sorted = false
		fmt.Fprintln(d.out, "Logged out.")
	case "sort":
		d.toggleSort()
	case "transfer":
		d.transfer(args)
	case "loan":
		d.loan(args)
	case "close":
		d.close(args)
	case "quit", "exit":
		fmt.Fprintln(d.out, "Bye.")
		return true
	default:
		fmt.Fprintf(d.out, "Unknown command %q. Type 'help' for commands.\n", command)
	}
	return false
}

func (d *demo) printHelp() {
	fmt.Fprint(d.out, `Commands:
  login <username> <pin>   log in to an account
  sort                     toggle sorted movement display
  transfer <to> <amount>   transfer to another account
  loan <amount>            request a loan
  close <username> <pin>   close the current account
  logout                   log out
  quit                     leave the demo
`)
}

func (d *demo) login(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(d.out, "Usage: login <username> <pin>")
		return
	}

	pin, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(d.out, "Login failed.")
		return
	}

	acct, err := d.bank.Authenticate(args[0], pin)
	if err != nil {
		fmt.Fprintln(d.out, "Login failed.")
		return
	}

	d.session.Login(acct)
	d.sorted = false
	fmt.Fprintf(d.out, "Welcome back, %s\n", acct.FirstName())
	d.dashboard()
}

func (d *demo) toggleSort() {
	if _, ok := d.session.Current(); !ok {
		fmt.Fprintln(d.out, "Log in first.")
		return
	}
	d.sorted = !d.sorted
	d.dashboard()
}

func (d *demo) transfer(args []string) {
	acct, ok := d.session.Current()
	if !ok {
		fmt.Fprintln(d.out, "Log in first.")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(d.out, "Usage: transfer <to> <amount>")
		return
	}

	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		fmt.Fprintln(d.out, "Transfer rejected: invalid amount.")
		return
	}

	if err := d.bank.Transfer(acct, args[0], amount); err != nil {
		fmt.Fprintf(d.out, "Transfer rejected: %v.\n", err)
		return
	}
	d.dashboard()
}

func (d *demo) loan(args []string) {
	acct, ok := d.session.Current()
	if !ok {
		fmt.Fprintln(d.out, "Log in first.")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(d.out, "Usage: loan <amount>")
		return
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		fmt.Fprintln(d.out, "Loan rejected: invalid amount.")
		return
	}

	if err := d.bank.RequestLoan(acct, amount); err != nil {
		fmt.Fprintf(d.out, "Loan rejected: %v.\n", err)
		return
	}
	d.dashboard()
}

func (d *demo) close(args []string) {
	acct, ok := d.session.Current()
	if !ok {
		fmt.Fprintln(d.out, "Log in first.")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(d.out, "Usage: close <username> <pin>")
		return
	}

	pin, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(d.out, "Close rejected: confirmation does not match.")
		return
	}

	if err := d.bank.Close(acct, args[0], pin); err != nil {
		fmt.Fprintf(d.out, "Close rejected: %v.\n", err)
		return
	}

	d.session.Logout()
	d.sorted = false
	fmt.Fprintln(d.out, "Account closed.")
}

func (d *demo) dashboard() {
	acct, ok := d.session.Current()
	if !ok {
		return
	}

	for i, m := range d.bank.Movements(acct, d.sorted) {
		kind := "deposit"
		if m.IsNegative() {
			kind = "withdrawal"
		}
		fmt.Fprintf(d.out, "  %2d %-10s %s %s\n", i+1, kind, m.Abs(), d.currency)
	}

	summary := d.bank.Summary(acct)
	fmt.Fprintf(d.out, "Balance: %s %s\n", d.bank.Balance(acct), d.currency)
	fmt.Fprintf(d.out, "In: %s  Out: %s  Interest: %s\n",
		summary.Income, summary.Outflow, summary.Interest)
}
