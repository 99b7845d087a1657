package engine

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

type courseKey struct {
	program domain.Program
	name    string
}

// ValidateCourses enforces the input contract shared by Aggregate and
// Predict: every course has a name, positive credits and a known grade, and
// no (program, name) pair appears twice.
func ValidateCourses(courses []domain.GradedCourse) error {
	seen := make(map[courseKey]int, len(courses))
	for i, c := range courses {
		if err := validate.Struct(c.CatalogCourse); err != nil {
			return structError(i, c.Name, err)
		}
		if !c.Grade.Valid() {
			return &InputError{Index: i, Course: c.Name, Field: "Grade", Reason: fmt.Sprintf("unknown value %q", c.Grade)}
		}
		key := courseKey{program: c.Program, name: c.Name}
		if first, dup := seen[key]; dup {
			return &InputError{Index: i, Course: c.Name, Field: "Name", Reason: fmt.Sprintf("duplicates course %d", first)}
		}
		seen[key] = i
	}
	return nil
}

func structError(index int, name string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &InputError{Index: index, Course: name, Field: "course", Reason: err.Error()}
	}
	fe := fieldErrs[0]
	reason := "fails " + fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "must not be empty"
	case "gt":
		reason = fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	}
	return &InputError{Index: index, Course: name, Field: fe.Field(), Reason: reason}
}
