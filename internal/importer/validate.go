package importer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateSnapshot checks a snapshot before conversion and returns every
// problem found, in a stable order.
func ValidateSnapshot(s *Snapshot) []error {
	var errs []error

	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = append(errs, fmt.Errorf("%s: invalid value %v (%s)", fe.Namespace(), fe.Value(), fe.Tag()))
			}
		} else {
			errs = append(errs, err)
		}
		// Unknown program keys would make the catalog checks below noisy.
		return errs
	}

	errs = append(errs, validateGradeMap("grades", s.Grades, false)...)
	errs = append(errs, validateGradeMap("overrides", s.Overrides, true)...)
	return errs
}

// validateGradeMap checks course names against the curriculum and grade
// text. Overrides are what-if grades and must be passing ones.
func validateGradeMap(section string, m map[string]map[string]string, passingOnly bool) []error {
	var errs []error
	for _, program := range sortedKeys(m) {
		courses := m[program]
		for _, name := range sortedKeys(courses) {
			if _, ok := catalog.Default().Lookup(domain.Program(program), name); !ok {
				errs = append(errs, fmt.Errorf("%s.%s: course %q is not in the curriculum", section, program, name))
				continue
			}
			g, err := domain.ParseGrade(courses[name])
			if err != nil {
				errs = append(errs, fmt.Errorf("%s.%s[%q]: %w", section, program, name, err))
				continue
			}
			if passingOnly && g != domain.GradeNone && !g.Contributing() {
				errs = append(errs, fmt.Errorf("%s.%s[%q]: %s is not a passing grade", section, program, name, g))
			}
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
