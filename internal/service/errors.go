package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCourse is returned when a course name is not in the
	// program's curriculum.
	ErrUnknownCourse = errors.New("unknown course")

	// ErrUngradedOnly is returned when overriding a course that already has
	// a recorded grade.
	ErrUngradedOnly = errors.New("overrides apply to ungraded courses only")

	ErrInvalidGrade    = errors.New("invalid grade")
	ErrInvalidBias     = errors.New("invalid bias")
	ErrInvalidLevel    = errors.New("invalid level")
	ErrInvalidProgram  = errors.New("invalid program")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

func formatValidationErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = "  - " + e.Error()
	}
	return fmt.Errorf("%w:\n%s", ErrInvalidSnapshot, strings.Join(msgs, "\n"))
}
