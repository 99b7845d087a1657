package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gradecast/internal/cli"
	"github.com/alexanderramin/gradecast/internal/config"
	"github.com/alexanderramin/gradecast/internal/db"
	"github.com/alexanderramin/gradecast/internal/repository"
	"github.com/alexanderramin/gradecast/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	gradeRepo := repository.NewSQLiteGradeRepo(database)
	overrideRepo := repository.NewSQLiteOverrideRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)
	}

	app := &cli.App{
		GradeBook:   service.NewGradeBookService(gradeRepo, overrideRepo, uow, observer),
		Standing:    service.NewStandingService(gradeRepo, prefsRepo, observer),
		Forecast:    service.NewForecastService(gradeRepo, overrideRepo, prefsRepo, observer),
		Preferences: service.NewPreferencesService(prefsRepo),
		Snapshots:   service.NewSnapshotService(gradeRepo, overrideRepo, prefsRepo, uow, observer),

		Program: cfg.Program,
		Bias:    cfg.Bias,
	}

	// Prompts only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
