package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/propfirm/eval"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current attempt's dashboard",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now()
	st := a.store.Load()

	if !st.Initialized {
		fmt.Println("Evaluation not started. Run 'propfirm start <stage>'.")
		return nil
	}

	m := a.engine.Metrics(st, now)
	rules := a.engine.Policy().Stage(st.Stage)

	fmt.Printf("Attempt %s — Stage %d (started %s)\n",
		st.AttemptID, st.Stage, st.StartedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  Current Equity:        $%.2f (%+.2f%%)\n", m.Equity, m.EquityPct)
	fmt.Printf("  Remaining to Target:   $%.2f (target $%.2f)\n", m.ToTarget, rules.TargetProfit)
	fmt.Printf("  Daily Loss Buffer:     $%.2f\n", m.DailyBuffer)
	fmt.Printf("  Total Loss Buffer:     $%.2f\n", m.TotalBuffer)
	fmt.Printf("  Trading Days:          %d/%d\n", m.TradingDays, m.MinDays)
	fmt.Printf("  Wins / Losses:         %d / %d\n", st.Wins, st.Losses)
	fmt.Printf("  Win Rate:              %.2f%%\n", m.WinRate)
	fmt.Printf("  Net R:                 %.2fR\n", m.NetR)
	fmt.Printf("  Progress:              %.2f%%\n", m.ProgressPct)

	if st.ActiveTrade != nil {
		fmt.Printf("  Active Trade:          #%d awaiting result (RR 1:%.2f)\n",
			st.ActiveTrade.ID, st.ActiveTrade.RR)
	} else {
		fmt.Printf("  Next Trade:            #%d\n", m.NextTradeID)
	}

	switch a.engine.Status(st, now) {
	case eval.StatusAccountLocked:
		fmt.Println("\nACCOUNT LOCKED: total loss limit violated.")
	case eval.StatusDayLocked:
		fmt.Println("\nDAILY LOCK: max daily loss hit. Trading disabled until next day.")
	case eval.StatusStagePassed:
		fmt.Println("\nSTAGE PASSED: target reached and minimum trading days met.")
	default:
		fmt.Println("\nAccount active.")
	}
	return nil
}
