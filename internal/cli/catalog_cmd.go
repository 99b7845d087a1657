package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var (
		level levelValue
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List curriculum courses",
		Long: "List the courses of the active program. Without flags the persisted\n" +
			"level is shown; --all lists the whole curriculum.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			program, err := app.activeProgram(ctx)
			if err != nil {
				return err
			}

			cat := catalog.Default()
			courses := cat.ProgramCourses(program)
			switch {
			case level.level != nil:
				courses = cat.Courses(program, *level.level)
			case !all:
				prefs, err := app.Preferences.Get(ctx)
				if err != nil {
					return fmt.Errorf("loading preferences: %w", err)
				}
				courses = cat.Courses(program, prefs.Level)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(program, courses))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("%d courses · %d credits in the full program",
				len(cat.ProgramCourses(program)), cat.TotalCredits(program))))
			return nil
		},
	}

	cmd.Flags().Var(&level, "level", "Curriculum level (foundation, diploma, bsc, bs)")
	cmd.Flags().BoolVar(&all, "all", false, "List every level")
	cmd.MarkFlagsMutuallyExclusive("level", "all")

	return cmd
}
