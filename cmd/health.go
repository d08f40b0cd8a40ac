package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the prediction backend is reachable",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	if err := svc.Client.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("backend %s unreachable: %w", svc.Client.BaseURL(), err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "backend %s is up\n", svc.Client.BaseURL())
	return err
}
