package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/storage"
	"github.com/Tiliavir/joblog/internal/timecalc"
	"github.com/Tiliavir/joblog/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the state whenever the logs change",
	Long: `Print the current state, then again every time the logs file is written,
e.g. by 'joblog start' in another terminal. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Wait this long for a burst of writes to settle")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := current.job.LogsPath()
	if err != nil {
		return err
	}
	debug.Printf("watching %s", path)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	w := &watch.Watcher{Path: path, Debounce: watchDebounce, Log: debug}
	return w.Run(ctx, func() {
		stamp := current.out.Muted("[" + timecalc.FormatClockOnly(timecalc.Now()) + "]")
		line, err := readState(path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), stamp, current.err.Warn(err.Error()))
			return
		}
		fmt.Fprintln(out, stamp, line)
	})
}

// readState loads the logs at path on their own, leaving the session's
// copy alone, and describes the state.
func readState(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	logs, err := storage.Open(f)
	if err != nil {
		return "", err
	}
	defer logs.Close()
	return stateLine(logs)
}
