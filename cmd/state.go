package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/storage"
	"github.com/Tiliavir/joblog/internal/timecalc"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Give a short overview of the current state",
	Args:  cobra.NoArgs,
	RunE:  runState,
}

func runState(cmd *cobra.Command, args []string) error {
	logs, err := current.logList()
	if err != nil {
		return err
	}
	line, err := stateLine(logs)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

// stateLine describes the running session and today's total.
func stateLine(logs *storage.LogList) (string, error) {
	now := timecalc.Now()
	from := timecalc.StartOfDay(now)
	today := storage.Summarize(logs.List(from, now.Add(time.Second), false), from, now)

	if !logs.IsActive() {
		return fmt.Sprintf("Not working. Today: %s.", timecalc.FormatDuration(today.Total)), nil
	}
	start, err := logs.LastStart()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Worked %s since %s. Today: %s.",
		timecalc.FormatDuration(now.Sub(start.Time())),
		timecalc.FormatClockOnly(start.Time()),
		timecalc.FormatDuration(today.Total)), nil
}
