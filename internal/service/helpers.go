package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/alexanderramin/gradecast/internal/repository"
)

// resolveCourse finds name in the program's curriculum, exact match first,
// then ignoring case.
func resolveCourse(program domain.Program, name string) (domain.CatalogCourse, error) {
	name = strings.TrimSpace(name)
	if c, ok := catalog.Default().Lookup(program, name); ok {
		return c, nil
	}
	for _, c := range catalog.Default().ProgramCourses(program) {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return domain.CatalogCourse{}, fmt.Errorf("%w: %q is not in the %s curriculum", ErrUnknownCourse, name, program.Label())
}

func validateProgram(p domain.Program) error {
	for _, known := range domain.AllPrograms {
		if p == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidProgram, p)
}

// resolveProgram returns p, or the persisted active program when p is empty.
func resolveProgram(ctx context.Context, prefs repository.PreferencesRepo, p domain.Program) (domain.Program, error) {
	if p == "" {
		stored, err := prefs.Get(ctx)
		if err != nil {
			return "", fmt.Errorf("loading preferences: %w", err)
		}
		p = stored.Program
	}
	if err := validateProgram(p); err != nil {
		return "", err
	}
	return p, nil
}

func gradeMap(records []*domain.GradeRecord) map[string]domain.Grade {
	m := make(map[string]domain.Grade, len(records))
	for _, r := range records {
		m[r.CourseName] = r.Grade
	}
	return m
}

// gradedHistory pairs the recorded grades with their catalog entries, in the
// order of courses. Curriculum order stands in for chronological order, which
// the predictor's trend adjustment relies on.
func gradedHistory(courses []domain.CatalogCourse, grades map[string]domain.Grade) []domain.GradedCourse {
	var out []domain.GradedCourse
	for _, c := range courses {
		if g, ok := grades[c.Name]; ok {
			out = append(out, domain.GradedCourse{CatalogCourse: c, Grade: g})
		}
	}
	return out
}

func sumCredits(courses []domain.CatalogCourse) int {
	total := 0
	for _, c := range courses {
		total += c.Credits
	}
	return total
}

func progressPct(earned, total int) float64 {
	if total == 0 {
		return 0
	}
	return engine.Round2(100 * float64(earned) / float64(total))
}
