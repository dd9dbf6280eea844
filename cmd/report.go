package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/storage"
	"github.com/Tiliavir/joblog/internal/timecalc"
	"github.com/Tiliavir/joblog/internal/ui"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report [<specifier>]",
	Short: "Show worked time per day",
	Long: `Sum up the worked time per day. The specifier is the same as for
'joblog list' and defaults to this week ('w'). A session is counted on the
day it started.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

// dayTotal is the worked time of one day.
type dayTotal struct {
	Day     time.Time
	Worked  time.Duration
	Session int
}

func runReport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"w"}
	}
	now := timecalc.Now()
	from, to, err := timecalc.ResolveRange(args, now)
	if err != nil {
		return err
	}

	logs, err := current.logList()
	if err != nil {
		return err
	}
	sum := storage.Summarize(logs.List(from, to, false), from, earliest(to, now))
	days := totalsPerDay(sum)

	label := reportLabel(args, from, to, now)

	var target time.Duration
	if len(args) == 1 && args[0] == "w" {
		props, err := current.job.Properties()
		if err != nil {
			return err
		}
		target = props.WeeklyTarget()
	}

	out := cmd.OutOrStdout()
	switch reportFormat {
	case "csv":
		fmt.Fprintln(out, "date,sessions,duration_minutes")
		for _, d := range days {
			fmt.Fprintf(out, "%s,%d,%d\n", d.Day.Format("2006-01-02"), d.Session, int64(d.Worked/time.Minute))
		}
	case "json":
		return printReportJSON(out, label, days, sum.Total, target)
	case "md":
		printReportMarkdown(out, current.out, label, days, sum.Total, target)
	default:
		return fmt.Errorf("unknown format %q", reportFormat)
	}
	return nil
}

// reportLabel names the reported range. The current week is named by its
// ISO week and its full Monday to Sunday span.
func reportLabel(args []string, from, to, now time.Time) string {
	if len(args) == 1 && args[0] == "w" {
		monday, sunday := timecalc.WeekRange(now)
		return fmt.Sprintf("Week %s (%s - %s)", timecalc.ISOWeekLabel(now),
			timecalc.FormatDateOnly(monday), timecalc.FormatDateOnly(sunday))
	}
	last := earliest(to, now).Add(-time.Second)
	return timecalc.FormatDateOnly(from) + " - " + timecalc.FormatDateOnly(last)
}

// totalsPerDay adds up the sessions by the day they started on.
func totalsPerDay(sum storage.Summary) []dayTotal {
	var days []dayTotal
	for _, s := range sum.Sessions {
		if n := len(days); n > 0 && timecalc.SameDay(days[n-1].Day, s.Start) {
			days[n-1].Worked += s.Duration()
			days[n-1].Session++
			continue
		}
		days = append(days, dayTotal{Day: timecalc.StartOfDay(s.Start), Worked: s.Duration(), Session: 1})
	}
	return days
}

func printReportMarkdown(w io.Writer, p *ui.Printer, label string, days []dayTotal, total, target time.Duration) {
	fmt.Fprintln(w, p.Header(label))
	fmt.Fprintln(w, "--------------------------------")
	for _, d := range days {
		fmt.Fprintf(w, "%-20s%s\n", timecalc.FormatDateOnly(d.Day), timecalc.FormatDuration(d.Worked))
	}
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "%-20s%s\n", "Total", timecalc.FormatDuration(total))
	if target > 0 {
		fmt.Fprintf(w, "%-20s%s\n", "Target", timecalc.FormatDuration(target))
		fmt.Fprintf(w, "%-20s%s\n", "Remaining", timecalc.FormatDuration(target-total))
	}
}

type reportDay struct {
	Date            string `json:"date"`
	Sessions        int    `json:"sessions"`
	DurationMinutes int64  `json:"duration_minutes"`
}

type reportJSON struct {
	Range         string      `json:"range"`
	Days          []reportDay `json:"days"`
	TotalMinutes  int64       `json:"total_minutes"`
	TargetMinutes int64       `json:"target_minutes,omitempty"`
}

func printReportJSON(w io.Writer, label string, days []dayTotal, total, target time.Duration) error {
	r := reportJSON{
		Range:         label,
		Days:          []reportDay{},
		TotalMinutes:  int64(total / time.Minute),
		TargetMinutes: int64(target / time.Minute),
	}
	for _, d := range days {
		r.Days = append(r.Days, reportDay{
			Date:            d.Day.Format("2006-01-02"),
			Sessions:        d.Session,
			DurationMinutes: int64(d.Worked / time.Minute),
		})
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
