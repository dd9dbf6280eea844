package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/storage"
	"github.com/Tiliavir/joblog/internal/timecalc"
	"github.com/Tiliavir/joblog/internal/ui"
)

var listShort bool

var listCmd = &cobra.Command{
	Use:   "list [-s] [<specifier>]",
	Short: "List what was done",
	Long: `List the recent work. The time specifier can be:
 1) Empty. Work of this day will be listed.
 2) One of the following characters:
     'd' - Today
     'w' - This week (since Monday morning)
     'm' - This month (since the 1st)
     'y' - This year (since the 1st of January)
 3) <amount><unit> where amount is an integer and unit is
     'm' - Minutes
     'h' - Hours
     'd' - Days
 4) A single date in the form 'dd.mm.yyyy'. Work after this date will
    be listed.
 5) Two dates in that form, separated by a minus:
    'dd.mm.yyyy - dd.mm.yyyy'. Work between these days will be listed.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listShort, "short", "s", false, "Do not list log notes")
}

func runList(cmd *cobra.Command, args []string) error {
	now := timecalc.Now()
	from, to, err := timecalc.ResolveRange(args, now)
	if err != nil {
		return err
	}
	debug.Printf("listing %s .. %s", timecalc.Format(from), timecalc.Format(to))

	logs, err := current.logList()
	if err != nil {
		return err
	}

	sum := storage.Summarize(logs.List(from, to, !listShort), from, earliest(to, now))
	printList(cmd.OutOrStdout(), current.out, sum)

	if len(args) == 1 && args[0] == "w" {
		props, err := current.job.Properties()
		if err != nil {
			return err
		}
		if target := props.WeeklyTarget(); target > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Target: %s, remaining: %s\n",
				timecalc.FormatDuration(target), timecalc.FormatDuration(target-sum.Total))
		}
	}
	return nil
}

// printList prints one block per session and the overall time.
func printList(w io.Writer, p *ui.Printer, sum storage.Summary) {
	for _, s := range sum.Sessions {
		day := p.Header(timecalc.FormatDateOnly(s.Start))
		if s.Open {
			fmt.Fprintf(w, "%s: Working since %s (%s)\n", day,
				timecalc.FormatClockOnly(s.Start), timecalc.FormatDuration(s.Duration()))
		} else {
			fmt.Fprintf(w, "%s: Worked %s\n", day, timecalc.FormatDuration(s.Duration()))
		}
		for _, note := range s.Notes {
			fmt.Fprintln(w, p.Note(note))
		}
	}
	fmt.Fprintf(w, "\n%s %s\n", p.Bold("Overall:"), timecalc.FormatDuration(sum.Total))
}

// earliest returns the earlier of a and b.
func earliest(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
