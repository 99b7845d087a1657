package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/spf13/cobra"
)

func newOverrideCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Pin what-if grades for ungraded courses",
		Long: "Overrides replace a course's predicted grade in the projected CGPA.\n" +
			"They never change the predictions for other courses.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}
			records, err := app.GradeBook.ListOverrides(ctx, program)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverrides(program, records))
			return nil
		},
	}

	cmd.AddCommand(
		newOverrideSetCmd(app),
		newOverrideClearCmd(app),
	)

	return cmd
}

func newOverrideSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <course> <grade>",
		Short: "Pin a passing grade (S A B C D E) for an ungraded course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}
			grade, err := domain.ParseGrade(args[1])
			if err != nil {
				return err
			}
			rec, err := app.GradeBook.SetOverride(ctx, program, args[0], grade)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s will be projected as %s\n",
				formatter.StyleGreen.Render("✔"), rec.CourseName, formatter.GradeBadge(rec.Grade))
			return nil
		},
	}
}

func newOverrideClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [course]",
		Short: "Remove one override, or all overrides of the program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := app.GradeBook.ClearOverride(ctx, program, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s back to its prediction\n", formatter.StyleGreen.Render("✔"), args[0])
				return nil
			}
			n, err := app.GradeBook.ClearOverrides(ctx, program)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s cleared %d override(s) for %s\n",
				formatter.StyleGreen.Render("✔"), n, program.Label())
			return nil
		},
	}
}
