package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/spf13/cobra"
)

func newProgramCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "program [program]",
		Short: "Show or switch the active program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				program, err := app.activeProgram(ctx)
				if err != nil {
					return err
				}
				cat := catalog.Default()
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Bold(program.Label()),
					formatter.Dim(fmt.Sprintf("(%d courses · %d credits)",
						len(cat.ProgramCourses(program)), cat.TotalCredits(program))))
				return nil
			}

			p, err := domain.ParseProgram(args[0])
			if err != nil {
				return err
			}
			if err := app.Preferences.SetProgram(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s active program: %s\n", formatter.StyleGreen.Render("✔"), p.Label())
			return nil
		},
	}
}

func newLevelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "level [level]",
		Short: "Show or set the level listed by 'catalog'",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				prefs, err := app.Preferences.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Bold(prefs.Level.Label()))
				return nil
			}

			l, err := domain.ParseLevel(args[0])
			if err != nil {
				return err
			}
			if err := app.Preferences.SetLevel(ctx, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s level: %s\n", formatter.StyleGreen.Render("✔"), l.Label())
			return nil
		},
	}
}
