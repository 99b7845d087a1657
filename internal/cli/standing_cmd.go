package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/alexanderramin/gradecast/internal/contract"
	"github.com/spf13/cobra"
)

func newStandingCmd(app *App) *cobra.Command {
	var level levelValue

	cmd := &cobra.Command{
		Use:   "standing",
		Short: "Show cumulative GPA overall and per level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}

			req := contract.NewStandingRequest()
			req.Program = program
			req.Level = level.level

			resp, err := app.Standing.GetStanding(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStanding(resp))
			return nil
		},
	}

	cmd.Flags().Var(&level, "level", "Only show one curriculum level")

	return cmd
}
