package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current attempt's state file",
	Long: `Delete the persisted account state. The audit journal (if configured)
is untouched. The next 'start' begins a completely fresh attempt.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Reset(); err != nil {
		return err
	}
	fmt.Println("State cleared.")
	return nil
}
