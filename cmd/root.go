package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/config"
	"github.com/Tiliavir/joblog/internal/joblog"
	"github.com/Tiliavir/joblog/internal/model"
	"github.com/Tiliavir/joblog/internal/storage"
	"github.com/Tiliavir/joblog/internal/timecalc"
	"github.com/Tiliavir/joblog/internal/ui"
)

const version = "0.1.0"

var (
	flagPath  string
	flagCheck bool
	flagDebug bool

	// debug traces what the CLI does; silent unless --debug is given.
	debug = log.New(io.Discard, "> ", 0)

	// current is the job of this invocation, set up before any command runs.
	current *session
)

var rootCmd = &cobra.Command{
	Use:   "joblog",
	Short: "joblog: keep track of your worked hours",
	Long: `joblog records when you start and end working, together with notes on
what you did, in a plain text file (.joblog/logs) and lists your worked time.

The logs file is searched for in the working directory and its parents.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: save,
}

func init() {
	rootCmd.SetVersionTemplate("joblog version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", "", "Use the given storage directory instead of searching for .joblog")
	rootCmd.PersistentFlags().BoolVarP(&flagCheck, "check", "c", false, "Check the integrity of the logs file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug output to stderr")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}

// session bundles what the commands of one invocation share.
type session struct {
	cfg config.Config
	job *joblog.Joblog
	out *ui.Printer
	err *ui.Printer
}

func setup(cmd *cobra.Command, args []string) error {
	if flagDebug {
		debug.SetOutput(cmd.ErrOrStderr())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	debug.Printf("config: %+v", cfg)

	job := joblog.New(joblog.Config{
		Dir:         cfg.Dir,
		SearchDepth: cfg.SearchDepth,
	})
	if flagPath != "" {
		debug.Printf("using explicit path %s", flagPath)
		job.SetPath(flagPath)
	}
	if flagCheck {
		job.DoChecks()
	}

	current = &session{
		cfg: cfg,
		job: job,
		out: ui.NewPrinter(cmd.OutOrStdout(), cfg.Color, cfg.Wrap),
		err: ui.NewPrinter(cmd.ErrOrStderr(), cfg.Color, 0),
	}
	return nil
}

func save(cmd *cobra.Command, args []string) error {
	debug.Printf("saving logs")
	return current.job.Save()
}

// logList loads the logs of the current job.
func (s *session) logList() (*storage.LogList, error) {
	logs, err := s.job.LogList()
	if err != nil {
		return nil, err
	}
	debug.Printf("using storage directory %s", s.job.Path())
	return logs, nil
}

// hintError carries the message shown to the user for a failed command.
type hintError struct {
	hint string
	err  error
}

func (e *hintError) Error() string { return e.hint }
func (e *hintError) Unwrap() error { return e.err }

func hint(err error, format string, a ...any) error {
	return &hintError{hint: fmt.Sprintf(format, a...), err: err}
}

// isMistake reports whether err is a state mistake the user can be guided
// out of.
func isMistake(err error) bool {
	return errors.Is(err, model.ErrSituational) && !errors.Is(err, storage.ErrClockSkew)
}

// Main runs the command line and returns the process exit code.
func Main() int {
	err := rootCmd.Execute()
	if current != nil {
		if closeErr := current.job.Close(); err == nil {
			err = closeErr
		}
	}
	if err == nil {
		return 0
	}
	return report(rootCmd.ErrOrStderr(), err)
}

// Execute is the entry point called from main.
func Execute() {
	os.Exit(Main())
}

// report prints err for the user and returns the exit code for it.
func report(w io.Writer, err error) int {
	debug.Printf("error: %v", err)

	var h *hintError
	switch {
	case errors.As(err, &h):
		fmt.Fprintln(w, h.hint)
		return 2
	case errors.Is(err, model.ErrCorruptedFile):
		fmt.Fprintf(w, "The logfile is corrupted. Try to fix it manually.\nThe error message is:\n  '%v'\n", err)
		return 2
	case errors.Is(err, model.ErrSituational):
		fmt.Fprintln(w, err)
		return 2
	case errors.Is(err, timecalc.ErrFormat):
		fmt.Fprintln(w, "Unknown date specifier. Use 'joblog help list' for help.")
		return 2
	}
	fmt.Fprintln(w, "Error:", err)
	fmt.Fprintln(w, "Use 'joblog --help' to see valid commands.")
	return 1
}
