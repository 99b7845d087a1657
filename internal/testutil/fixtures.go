package testutil

import (
	"time"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/google/uuid"
)

// Course options
type CourseOption func(*domain.GradedCourse)

func WithCredits(n int) CourseOption {
	return func(c *domain.GradedCourse) {
		c.Credits = n
	}
}

func WithCluster(cl domain.SkillCluster) CourseOption {
	return func(c *domain.GradedCourse) {
		c.Cluster = cl
	}
}

func WithLevel(l domain.Level) CourseOption {
	return func(c *domain.GradedCourse) {
		c.Level = l
	}
}

func WithProgram(p domain.Program) CourseOption {
	return func(c *domain.GradedCourse) {
		c.Program = p
	}
}

// NewTestCourse returns a 4-credit foundation Programming course in the data
// science program with the given grade.
func NewTestCourse(name string, grade domain.Grade, opts ...CourseOption) domain.GradedCourse {
	c := domain.GradedCourse{
		CatalogCourse: domain.CatalogCourse{
			Name:    name,
			Credits: 4,
			Cluster: domain.ClusterProgramming,
			Program: domain.ProgramDataScience,
			Level:   domain.LevelFoundation,
		},
		Grade: grade,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestTarget returns the catalog part of a fresh test course.
func NewTestTarget(name string, opts ...CourseOption) domain.CatalogCourse {
	return NewTestCourse(name, domain.GradeNone, opts...).CatalogCourse
}

// NewTestRecord returns a persisted grade record for the given course.
func NewTestRecord(program domain.Program, course string, grade domain.Grade) *domain.GradeRecord {
	return &domain.GradeRecord{
		ID:         uuid.New().String(),
		Program:    program,
		CourseName: course,
		Grade:      grade,
		UpdatedAt:  time.Now().UTC(),
	}
}
