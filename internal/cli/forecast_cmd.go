package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/alexanderramin/gradecast/internal/contract"
	"github.com/spf13/cobra"
)

func newForecastCmd(app *App) *cobra.Command {
	var (
		level  levelValue
		bias   biasValue
		course string
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Predict grades for ungraded courses and the projected CGPA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}

			req := contract.NewForecastRequest()
			req.Program = program
			req.Level = level.level
			req.Course = strings.TrimSpace(course)
			req.Bias = bias.ptr()
			if req.Bias == nil && app.Bias != 0 {
				b := app.Bias
				req.Bias = &b
			}

			resp, err := app.Forecast.Forecast(ctx, req)
			if err != nil {
				return err
			}

			if req.Course != "" && len(resp.Forecasts) == 1 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseForecast(resp, resp.Forecasts[0]))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatForecast(resp))
			return nil
		},
	}

	cmd.Flags().Var(&level, "level", "Only forecast one curriculum level")
	cmd.Flags().Var(&bias, "bias", "Confidence bias for this run (0.8-1.2)")
	cmd.Flags().StringVar(&course, "course", "", "Explain the forecast for a single course")

	return cmd
}
