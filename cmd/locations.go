package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/bhp/infra/terminal"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the locations known to the backend",
	RunE:  runLocations,
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}

func runLocations(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	var opts terminal.Options
	if err := svc.Loader(&opts, terminal.NewAlerter(cmd.ErrOrStderr())).Load(cmd.Context()); err != nil {
		return err
	}
	for _, loc := range opts.Values() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), loc); err != nil {
			return err
		}
	}
	return nil
}
