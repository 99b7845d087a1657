package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	GradeBook   service.GradeBookService
	Standing    service.StandingService
	Forecast    service.ForecastService
	Preferences service.PreferencesService
	Snapshots   service.SnapshotService

	// Program and Bias come from configuration. When set they win over the
	// persisted preferences but lose to command-line flags.
	Program domain.Program
	Bias    float64

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
	// PickGrade asks the user for a grade. Defaults to a huh select.
	PickGrade func(course string) (domain.Grade, error)
}

// NewRootCmd creates the top-level "gradecast" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var program string

	root := &cobra.Command{
		Use:           "gradecast",
		Short:         "Grade book and grade forecaster",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if program == "" {
				return nil
			}
			p, err := domain.ParseProgram(program)
			if err != nil {
				return err
			}
			app.Program = p
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&program, "program", "p", "", "Program for this invocation (data_science|ds, electronic_systems|es)")

	root.AddCommand(
		newCatalogCmd(app),
		newGradeCmd(app),
		newOverrideCmd(app),
		newStandingCmd(app),
		newForecastCmd(app),
		newProgramCmd(app),
		newLevelCmd(app),
		newBiasCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}

// activeProgram resolves the program a command works on: flag or config
// first, then the persisted preference.
func (a *App) activeProgram(ctx context.Context) (domain.Program, error) {
	if a.Program != "" {
		return a.Program, nil
	}
	prefs, err := a.Preferences.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("loading preferences: %w", err)
	}
	return prefs.Program, nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
