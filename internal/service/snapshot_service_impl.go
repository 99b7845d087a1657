package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/gradecast/internal/app"
	"github.com/alexanderramin/gradecast/internal/db"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/importer"
	"github.com/alexanderramin/gradecast/internal/repository"
)

type snapshotService struct {
	grades    repository.GradeRepo
	overrides repository.GradeRepo
	prefs     repository.PreferencesRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewSnapshotService(
	grades repository.GradeRepo,
	overrides repository.GradeRepo,
	prefs repository.PreferencesRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SnapshotService {
	return &snapshotService{
		grades:    grades,
		overrides: overrides,
		prefs:     prefs,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Export writes the grade book of every program as a snapshot document.
func (s *snapshotService) Export(ctx context.Context, w io.Writer) error {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}

	bias := prefs.Bias
	snap := &importer.Snapshot{
		Version:   importer.SnapshotVersion,
		Program:   string(prefs.Program),
		Level:     string(prefs.Level),
		Bias:      &bias,
		Grades:    make(map[string]map[string]string, len(domain.AllPrograms)),
		Overrides: make(map[string]map[string]string, len(domain.AllPrograms)),
	}
	for _, p := range domain.AllPrograms {
		if snap.Grades[string(p)], err = s.exportMap(ctx, s.grades, p); err != nil {
			return err
		}
		if snap.Overrides[string(p)], err = s.exportMap(ctx, s.overrides, p); err != nil {
			return err
		}
	}
	return importer.EncodeSnapshot(w, snap)
}

func (s *snapshotService) exportMap(ctx context.Context, repo repository.GradeRepo, p domain.Program) (map[string]string, error) {
	records, err := repo.ListByProgram(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("exporting %s: %w", p, err)
	}
	m := make(map[string]string, len(records))
	for _, r := range records {
		m[r.CourseName] = string(r.Grade)
	}
	return m, nil
}

func (s *snapshotService) ImportFile(ctx context.Context, filePath string) (*app.ImportResult, error) {
	snap, err := importer.LoadSnapshot(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	return s.ImportSnapshot(ctx, snap)
}

// ImportSnapshot replaces the grades and overrides of every program present
// in snap, and applies any preferences it carries, in one transaction.
func (s *snapshotService) ImportSnapshot(ctx context.Context, snap *importer.Snapshot) (res *app.ImportResult, err error) {
	uc := newUseCase("import-snapshot", "", "")
	defer observe(ctx, s.observer, uc, time.Now(), &err)

	if errs := importer.ValidateSnapshot(snap); len(errs) > 0 {
		err = formatValidationErrors(errs)
		return nil, err
	}

	conv := importer.Convert(snap, time.Now().UTC())
	res = &app.ImportResult{Programs: conv.Programs, SkippedOverrides: conv.Skipped}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGrades := repository.NewSQLiteGradeRepo(tx)
		txOverrides := repository.NewSQLiteOverrideRepo(tx)

		for _, p := range conv.Programs {
			if _, err := txGrades.DeleteByProgram(ctx, p); err != nil {
				return err
			}
			if _, err := txOverrides.DeleteByProgram(ctx, p); err != nil {
				return err
			}
			for _, rec := range conv.Grades[p] {
				if err := txGrades.Upsert(ctx, rec); err != nil {
					return fmt.Errorf("importing grade for %q: %w", rec.CourseName, err)
				}
				res.GradeCount++
			}
			for _, rec := range conv.Overrides[p] {
				if err := txOverrides.Upsert(ctx, rec); err != nil {
					return fmt.Errorf("importing override for %q: %w", rec.CourseName, err)
				}
				res.OverrideCount++
			}
		}

		if conv.Program == "" && conv.Level == "" && conv.Bias == nil {
			return nil
		}
		txPrefs := repository.NewSQLitePreferencesRepo(tx)
		prefs, err := txPrefs.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading preferences: %w", err)
		}
		prefs.Program = domain.Coalesce(conv.Program, prefs.Program)
		prefs.Level = domain.Coalesce(conv.Level, prefs.Level)
		prefs.Bias = domain.DerefOr(prefs.Bias, conv.Bias)
		return txPrefs.Upsert(ctx, prefs)
	})
	if err != nil {
		return nil, err
	}

	uc.fields["programs"] = len(res.Programs)
	uc.fields["grades"] = res.GradeCount
	uc.fields["overrides"] = res.OverrideCount
	return res, nil
}
