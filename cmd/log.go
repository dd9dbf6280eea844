package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/joblog/internal/model"
)

var logCmd = &cobra.Command{
	Use:   "log <message...>",
	Short: "Write down what you did",
	Long: `Add a note to the running session. All arguments are joined with spaces,
so quoting is optional.`,
	Args: cobra.ArbitraryArgs,
	RunE: runLog,
}

func init() {
	// Everything after the first word belongs to the message.
	logCmd.Flags().SetInterspersed(false)
}

func runLog(cmd *cobra.Command, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return hint(model.ErrSituational, "Empty log discarded.")
	}

	logs, err := current.logList()
	if err != nil {
		return err
	}
	if err := logs.Log(message); err != nil {
		if isMistake(err) && !logs.IsActive() {
			return hint(err, "You need to start before writing logs.")
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Log noted.")
	return nil
}
