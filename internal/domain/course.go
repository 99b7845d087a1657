package domain

import "time"

// CatalogCourse is an immutable curriculum entry scoped to one program and level.
type CatalogCourse struct {
	Name    string       `json:"name" validate:"required"`
	Credits int          `json:"credits" validate:"gt=0"`
	Cluster SkillCluster `json:"cluster"`
	Program Program      `json:"program"`
	Level   Level        `json:"level"`
}

// GradedCourse is one historical data point: a catalog course with the
// grade the student recorded for it.
type GradedCourse struct {
	CatalogCourse
	Grade Grade `json:"grade"`
}

// GradeRecord is the persisted form of a recorded grade or override,
// keyed by (program, course name).
type GradeRecord struct {
	ID         string
	Program    Program
	CourseName string
	Grade      Grade
	UpdatedAt  time.Time
}

// Preferences holds the persisted user settings.
type Preferences struct {
	ID      string
	Program Program
	Level   Level
	Bias    float64
}
