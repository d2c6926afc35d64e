package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List the attempt's resolved trades, newest first",
	RunE:  runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.store.Load()
	if len(st.Trades) == 0 {
		fmt.Println("No trades recorded.")
		return nil
	}

	for i := len(st.Trades) - 1; i >= 0; i-- {
		t := st.Trades[i]
		fmt.Printf("#%d — %s — RR 1:%.2f — %s — %s\n",
			t.ID, t.Result, t.RR, t.Screenshot,
			t.ClosedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
