package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/propfirm/account"
	"github.com/rustyeddy/propfirm/eval"
	"github.com/spf13/cobra"
)

var resultCmd = &cobra.Command{
	Use:   "result win|loss",
	Short: "Report the result of the active trade",
	Long: `Resolve the active trade as a win or a loss. With no active trade (or
on a locked account) this is a no-op, so repeating the command is safe.

Example:
  propfirm result win`,
	Args: cobra.ExactArgs(1),
	RunE: runResult,
}

func init() {
	rootCmd.AddCommand(resultCmd)
}

func runResult(cmd *cobra.Command, args []string) error {
	var result account.Result
	switch strings.ToLower(args[0]) {
	case "win":
		result = account.Win
	case "loss":
		result = account.Loss
	default:
		return fmt.Errorf("result must be 'win' or 'loss', got %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now()
	st := a.store.Load()
	if st.ActiveTrade == nil || st.AccountLocked {
		fmt.Println("No active trade to resolve.")
		return nil
	}
	tradeID := st.ActiveTrade.ID

	next := a.engine.RegisterResult(st, result, now)
	if err := a.store.Save(next); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	m := a.engine.Metrics(next, now)
	fmt.Printf("Trade #%d resolved: %s\n", tradeID, result)
	fmt.Printf("  Equity: $%.2f (%+.2f%%)\n", m.Equity, m.EquityPct)
	fmt.Printf("  Daily buffer: $%.2f   Total buffer: $%.2f\n", m.DailyBuffer, m.TotalBuffer)

	switch a.engine.Status(next, now) {
	case eval.StatusAccountLocked:
		fmt.Println("ACCOUNT LOCKED: total loss limit violated.")
	case eval.StatusDayLocked:
		fmt.Println("DAILY LOCK: max daily loss hit. Trading disabled until next day.")
	case eval.StatusStagePassed:
		fmt.Println("STAGE PASSED: target reached and minimum trading days met.")
	}
	return nil
}
