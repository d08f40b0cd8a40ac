package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/bhp/app"
	"github.com/kilianp07/bhp/infra/terminal"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Submit every row of a CSV file and summarise the estimates",
	Long: `Submit every row of a CSV file and summarise the estimates.
The header row names the form fields (total_sqft, bhk, bath, built_year,
area_type, availability, location, nearby_metro, age_segment).`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "CSV file with one property per row")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(batchFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	rows, err := app.ReadBatch(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", batchFile, err)
	}

	svc, err := loadService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	ctrl := svc.Controller(terminal.NewDisplay(cmd.OutOrStdout()))
	sum := app.RunBatch(cmd.Context(), ctrl, rows)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", sum)
	return err
}
