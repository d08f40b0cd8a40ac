package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/bhp/core/form"
	"github.com/kilianp07/bhp/infra/terminal"
)

var predictValues = map[string]*string{}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Submit one property and print the estimated price",
	Example: `  bhp predict --total-sqft 1200 --bhk 2 --bath 2 --built-year 2015 \
    --location Whitefield --area-type "Super built-up  Area" \
    --availability "Ready To Move" --nearby-metro Yes`,
	RunE: runPredict,
}

func init() {
	// Numbers are taken as raw text so they go through the same coercion as the form.
	for _, f := range form.Fields {
		predictValues[f] = predictCmd.Flags().String(flagName(f), "", fieldUsage[f])
	}
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	values := form.FormValues{}
	for f, v := range predictValues {
		values[f] = *v
	}
	out := svc.Controller(terminal.NewDisplay(cmd.OutOrStdout())).HandleSubmit(cmd.Context(), values)
	return outcomeError(out)
}

// outcomeError turns a rejected or failed submission into a non-zero exit.
func outcomeError(out form.Outcome) error {
	switch out.State {
	case form.StateRejected:
		return fmt.Errorf("submission %s rejected with %d validation errors", out.ID, len(out.Errors))
	case form.StateFailed:
		return fmt.Errorf("submission %s failed: %w", out.ID, out.Err)
	default:
		return nil
	}
}
