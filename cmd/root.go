package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/bhp/app"
	"github.com/kilianp07/bhp/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "bhp",
	Short:        "Bengaluru home price prediction client",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func loadService() (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg)
}

func closeService(cmd *cobra.Command, svc *app.Service) {
	if err := svc.Close(); err != nil {
		if _, ferr := fmt.Fprintf(cmd.ErrOrStderr(), "error while closing service: %v\n", err); ferr != nil {
			fmt.Println("failed to write to stderr:", ferr)
		}
	}
}
