package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/joblog/internal/model"
	"github.com/Tiliavir/joblog/internal/timecalc"
)

var (
	exportFormat string
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export [<specifier>]",
	Short: "Export log entries to stdout",
	Long: `Print the entries of a time range, notes included. The specifier is the
same as for 'joblog list' and defaults to this week ('w'). With --all every
entry of the logs file is exported.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml, log")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export all entries, ignoring the specifier")
}

// exportEntry is the JSON form of an entry.
type exportEntry struct {
	Time    string `json:"time" yaml:"time"`
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func runExport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"w"}
	}
	from, to, err := timecalc.ResolveRange(args, timecalc.Now())
	if err != nil {
		return err
	}

	logs, err := current.logList()
	if err != nil {
		return err
	}
	var entries []model.Entry
	if exportAll {
		entries = logs.Entries()
	} else {
		entries = logs.List(from, to, true)
	}

	out := cmd.OutOrStdout()
	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(exportEntries(entries), "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(exportEntries(entries)); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
	case "log":
		for _, e := range entries {
			fmt.Fprintln(out, e.String())
		}
	case "csv":
		printCSV(out, entries)
	default:
		return fmt.Errorf("unknown format %q", exportFormat)
	}
	return nil
}

func exportEntries(entries []model.Entry) []exportEntry {
	items := make([]exportEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, exportEntry{
			Time:    e.Time().Format("2006-01-02T15:04:05Z07:00"),
			Type:    e.Kind().String(),
			Message: e.Message(),
		})
	}
	return items
}

func printCSV(w io.Writer, entries []model.Entry) {
	fmt.Fprintln(w, "date,time,type,message")
	for _, e := range entries {
		fmt.Fprintf(w, "%s,%s,%s,%s\n",
			csvEscape(e.Time().Format("2006-01-02")),
			csvEscape(timecalc.FormatClockOnly(e.Time())),
			csvEscape(e.Kind().String()),
			csvEscape(e.Message()),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
