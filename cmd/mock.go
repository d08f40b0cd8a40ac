package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/bhp/mockapi"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run a local mock of the prediction backend",
	RunE:  runMock,
}

func init() {
	rootCmd.AddCommand(mockCmd)
}

func runMock(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx := cmd.Context()
	svc.ServeMetrics(ctx)

	srv := mockapi.New(svc.Config.Mock)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("mock backend: %w", err)
	}
	return nil
}
