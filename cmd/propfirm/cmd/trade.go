package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/propfirm/risk"
	"github.com/spf13/cobra"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Validate and confirm a proposed trade",
	Long: `Validate a proposed trade against the current account state and, if
every check passes, confirm it as the active trade. The fixed-risk stake
is reserved; equity moves only when the result is reported.

Example:
  propfirm trade --entry 100 --stop 95 --target 115 --screenshot setup.png`,
	RunE: runTrade,
}

var (
	tradeEntry      float64
	tradeStop       float64
	tradeTarget     float64
	tradeScreenshot string
)

func init() {
	rootCmd.AddCommand(tradeCmd)

	tradeCmd.Flags().Float64Var(&tradeEntry, "entry", 0, "entry price (required)")
	tradeCmd.Flags().Float64Var(&tradeStop, "stop", 0, "stop price (required)")
	tradeCmd.Flags().Float64Var(&tradeTarget, "target", 0, "target price (required)")
	tradeCmd.Flags().StringVar(&tradeScreenshot, "screenshot", "", "proof-of-trade screenshot name (required)")
	tradeCmd.MarkFlagRequired("entry")
	tradeCmd.MarkFlagRequired("stop")
	tradeCmd.MarkFlagRequired("target")
}

func runTrade(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.store.Load()
	intent := risk.TradeIntent{
		Entry:      tradeEntry,
		Stop:       tradeStop,
		Target:     tradeTarget,
		Screenshot: tradeScreenshot,
	}

	next, decision := a.engine.Confirm(st, intent, time.Now())
	if !decision.Allowed {
		// Rejection mutates nothing; report the first failed gate.
		fmt.Printf("Rejected [%s]: %s\n", decision.Code, decision.Msg)
		if decision.RR > 0 {
			fmt.Printf("  RR: 1:%.2f\n", decision.RR)
		}
		return nil
	}

	if err := a.store.Save(next); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	fmt.Printf("Trade #%d confirmed (RR 1:%.2f, risk $%.2f). Awaiting result.\n",
		next.ActiveTrade.ID, next.ActiveTrade.RR, a.engine.Policy().FixedRisk)
	return nil
}
