package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/timecalc"
)

var endAmend bool

var endCmd = &cobra.Command{
	Use:   "end [-a]",
	Short: "End working",
	Long: `Call this when you are about to end working for now.

With -a, when you called end already, the end is moved to the current time.`,
	Args: cobra.NoArgs,
	RunE: runEnd,
}

func init() {
	endCmd.Flags().BoolVarP(&endAmend, "again", "a", false, "Move the last end to now")
}

func runEnd(cmd *cobra.Command, args []string) error {
	logs, err := current.logList()
	if err != nil {
		return err
	}

	if err := logs.End(endAmend); err != nil {
		if !isMistake(err) || logs.IsActive() {
			return err
		}
		if _, lastErr := logs.LastEntry(); !endAmend || lastErr != nil {
			return hint(err, "You need to start first.")
		}
		return hint(err, "Cannot move the end when something happened in between.")
	}

	last, err := logs.LastEntry()
	if err != nil {
		return err
	}
	start, err := logs.LastStart()
	if err != nil {
		return err
	}
	worked := last.Time().Sub(start.Time())
	fmt.Fprintf(cmd.OutOrStdout(), "%s You worked %s.\n", current.out.Good("End noted."), timecalc.FormatDuration(worked))
	return nil
}
