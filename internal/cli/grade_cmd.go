package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/spf13/cobra"
)

func newGradeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Record and list course grades",
	}

	cmd.AddCommand(
		newGradeSetCmd(app),
		newGradeClearCmd(app),
		newGradeListCmd(app),
	)

	return cmd
}

func newGradeSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <course> [grade]",
		Short: "Record a grade (S A B C D E U W I I_OP I_PR)",
		Long: "Record a grade for a curriculum course. Recording a grade removes any\n" +
			"override for the course. Without a grade, an interactive picker opens\n" +
			"when running in a terminal.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}

			grade, err := gradeArg(app, args)
			if err != nil {
				return err
			}

			rec, err := app.GradeBook.SetGrade(ctx, program, args[0], grade)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				formatter.StyleGreen.Render("✔"), rec.CourseName, formatter.GradeBadge(rec.Grade))
			return nil
		},
	}
}

func gradeArg(app *App, args []string) (domain.Grade, error) {
	if len(args) == 2 {
		g, err := domain.ParseGrade(args[1])
		if err != nil {
			return domain.GradeNone, err
		}
		if g == domain.GradeNone {
			return domain.GradeNone, errors.New("grade is required; use 'grade clear' to remove one")
		}
		return g, nil
	}
	if !app.interactive() {
		return domain.GradeNone, errors.New("grade is required when not running in a terminal")
	}
	pick := app.PickGrade
	if pick == nil {
		pick = pickGradeInteractive
	}
	return pick(args[0])
}

func newGradeClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <course>",
		Short: "Remove a recorded grade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}
			if err := app.GradeBook.ClearGrade(ctx, program, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s cleared %s\n", formatter.StyleGreen.Render("✔"), args[0])
			return nil
		},
	}
}

func newGradeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every course with its recorded grade",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}
			graded, err := app.GradeBook.ListGrades(ctx, program)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGradeList(program, graded))
			return nil
		},
	}
}
