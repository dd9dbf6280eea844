package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a logfile",
	Long: `Create the storage folder (.joblog, or the directory given with --path)
with an empty logs file in it.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := current.job.Init()
	if err != nil {
		return hint(err, "Init failed. The error message is:\n'%v'\nNote that this could mean this folder is already initialized.", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty logs in %s\n", path)
	return nil
}
