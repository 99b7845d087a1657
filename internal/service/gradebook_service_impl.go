package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/db"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/repository"
	"github.com/google/uuid"
)

type gradeBookService struct {
	grades    repository.GradeRepo
	overrides repository.GradeRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewGradeBookService(
	grades repository.GradeRepo,
	overrides repository.GradeRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) GradeBookService {
	return &gradeBookService{
		grades:    grades,
		overrides: overrides,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// SetGrade records a grade and drops any override for the same course, since
// an override only makes sense while the course is ungraded.
func (s *gradeBookService) SetGrade(ctx context.Context, program domain.Program, course string, grade domain.Grade) (rec *domain.GradeRecord, err error) {
	uc := newUseCase("set-grade", program, course)
	uc.fields["grade"] = string(grade)
	defer observe(ctx, s.observer, uc, time.Now(), &err)

	if err = validateProgram(program); err != nil {
		return nil, err
	}
	var c domain.CatalogCourse
	c, err = resolveCourse(program, course)
	if err != nil {
		return nil, err
	}
	if grade == domain.GradeNone || !grade.Valid() {
		err = fmt.Errorf("%w: %q", ErrInvalidGrade, grade)
		return nil, err
	}

	rec = &domain.GradeRecord{
		ID:         uuid.New().String(),
		Program:    program,
		CourseName: c.Name,
		Grade:      grade,
		UpdatedAt:  time.Now().UTC(),
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteGradeRepo(tx).Upsert(ctx, rec); err != nil {
			return err
		}
		err := repository.NewSQLiteOverrideRepo(tx).Delete(ctx, program, c.Name)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err == nil {
			uc.fields["override_cleared"] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *gradeBookService) ClearGrade(ctx context.Context, program domain.Program, course string) (err error) {
	defer observe(ctx, s.observer, newUseCase("clear-grade", program, course), time.Now(), &err)

	var c domain.CatalogCourse
	c, err = resolveCourse(program, course)
	if err != nil {
		return err
	}
	return s.grades.Delete(ctx, program, c.Name)
}

func (s *gradeBookService) ListGrades(ctx context.Context, program domain.Program) ([]domain.GradedCourse, error) {
	if err := validateProgram(program); err != nil {
		return nil, err
	}
	records, err := s.grades.ListByProgram(ctx, program)
	if err != nil {
		return nil, err
	}
	grades := gradeMap(records)

	courses := catalog.Default().ProgramCourses(program)
	out := make([]domain.GradedCourse, len(courses))
	for i, c := range courses {
		out[i] = domain.GradedCourse{CatalogCourse: c, Grade: grades[c.Name]}
	}
	return out, nil
}

func (s *gradeBookService) SetOverride(ctx context.Context, program domain.Program, course string, grade domain.Grade) (rec *domain.GradeRecord, err error) {
	uc := newUseCase("set-override", program, course)
	uc.fields["grade"] = string(grade)
	defer observe(ctx, s.observer, uc, time.Now(), &err)

	if err = validateProgram(program); err != nil {
		return nil, err
	}
	var c domain.CatalogCourse
	c, err = resolveCourse(program, course)
	if err != nil {
		return nil, err
	}
	if !grade.Contributing() {
		err = fmt.Errorf("%w: overrides take a passing grade S-E, got %q", ErrInvalidGrade, grade)
		return nil, err
	}

	rec = &domain.GradeRecord{
		ID:         uuid.New().String(),
		Program:    program,
		CourseName: c.Name,
		Grade:      grade,
		UpdatedAt:  time.Now().UTC(),
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		recorded, err := repository.NewSQLiteGradeRepo(tx).Get(ctx, program, c.Name)
		if err == nil {
			return fmt.Errorf("%w: %q is graded %s", ErrUngradedOnly, c.Name, recorded.Grade)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return repository.NewSQLiteOverrideRepo(tx).Upsert(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *gradeBookService) ClearOverride(ctx context.Context, program domain.Program, course string) (err error) {
	defer observe(ctx, s.observer, newUseCase("clear-override", program, course), time.Now(), &err)

	var c domain.CatalogCourse
	if c, err = resolveCourse(program, course); err != nil {
		return err
	}
	err = s.overrides.Delete(ctx, program, c.Name)
	return err
}

func (s *gradeBookService) ClearOverrides(ctx context.Context, program domain.Program) (n int, err error) {
	uc := newUseCase("clear-overrides", program, "")
	defer observe(ctx, s.observer, uc, time.Now(), &err)

	if err = validateProgram(program); err != nil {
		return 0, err
	}
	n, err = s.overrides.DeleteByProgram(ctx, program)
	uc.fields["cleared"] = n
	return n, err
}

func (s *gradeBookService) ListOverrides(ctx context.Context, program domain.Program) ([]*domain.GradeRecord, error) {
	if err := validateProgram(program); err != nil {
		return nil, err
	}
	return s.overrides.ListByProgram(ctx, program)
}
