package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBiasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bias [value]",
		Short: "Show or persist the default confidence bias (0.8-1.2)",
		Long: "The bias scales every forecast before it is clamped to the grade scale.\n" +
			"Below 1.0 is conservative, above 1.0 optimistic.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				prefs, err := app.Preferences.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBias(prefs.Bias))
				if app.Bias != 0 && app.Bias != prefs.Bias {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("configured for this run: "+formatter.FormatBias(app.Bias)))
				}
				return nil
			}

			v, err := parseBias(args[0])
			if err != nil {
				return err
			}
			if err := app.Preferences.SetBias(ctx, v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s bias: %s\n", formatter.StyleGreen.Render("✔"), formatter.FormatBias(v))
			return nil
		},
	}
}
