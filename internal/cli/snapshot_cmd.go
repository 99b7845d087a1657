package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write a JSON snapshot of grades, overrides and preferences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				return app.Snapshots.Export(ctx, cmd.OutOrStdout())
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating snapshot file: %w", err)
			}
			if err := app.Snapshots.Export(ctx, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing snapshot file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s snapshot written to %s\n", formatter.StyleGreen.Render("✔"), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the programs listed in a JSON snapshot",
		Long: "Import a snapshot produced by 'export'. Every program present in the\n" +
			"file has its grades and overrides replaced; other programs are kept.\n" +
			"The whole import runs in one transaction.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Snapshots.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}

			labels := make([]string, len(res.Programs))
			for i, p := range res.Programs {
				labels[i] = p.Label()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s imported %d grade(s) and %d override(s)", formatter.StyleGreen.Render("✔"),
				res.GradeCount, res.OverrideCount)
			if len(labels) > 0 {
				fmt.Fprintf(out, " for %s", strings.Join(labels, ", "))
			}
			fmt.Fprintln(out)
			if res.SkippedOverrides > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("skipped %d override(s) on graded courses", res.SkippedOverrides)))
			}
			return nil
		},
	}
}
