package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/timecalc"
)

var startAmend bool

var startCmd = &cobra.Command{
	Use:   "start [-a]",
	Short: "Begin working",
	Long: `Call this when you start working.

With -a, when you called start already, the start is moved to the current
time. This only works if nothing was logged since.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&startAmend, "again", "a", false, "Move the running start to now")
}

func runStart(cmd *cobra.Command, args []string) error {
	logs, err := current.logList()
	if err != nil {
		return err
	}

	if err := logs.Start(startAmend); err != nil {
		if !isMistake(err) || !logs.IsActive() {
			return err
		}
		if !startAmend {
			return hint(err, "Already started.\nIf you want to move the start to now, use 'start -a'.")
		}
		return hint(err, "Cannot start again when something happened in between.")
	}

	last, err := logs.LastEntry()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", current.out.Good("Started at "+timecalc.FormatClockOnly(last.Time())+"."))
	return nil
}
