package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <stage>",
	Short: "Start a fresh evaluation attempt at the given stage",
	Long: `Start a new evaluation attempt. Any prior attempt is discarded and a
fresh account state is created. The stage is locked for the lifetime of
the attempt.

Example:
  propfirm start 1`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	stage, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid stage %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	st, err := a.engine.StartEvaluation(stage, time.Now())
	if err != nil {
		return err
	}
	if err := a.store.Save(st); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	rules := a.engine.Policy().Stage(stage)
	fmt.Printf("Evaluation started — Stage %d locked.\n", stage)
	fmt.Printf("  Attempt: %s\n", st.AttemptID)
	fmt.Printf("  Balance: $%.2f\n", st.Equity)
	fmt.Printf("  Target:  $%.2f over at least %d trading days\n",
		rules.TargetProfit, rules.MinTradingDays)
	return nil
}
