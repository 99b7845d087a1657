package importer

import (
	"time"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/google/uuid"
)

// Converted is a validated snapshot ready for persistence.
type Converted struct {
	Grades    map[domain.Program][]*domain.GradeRecord
	Overrides map[domain.Program][]*domain.GradeRecord
	// Programs lists every program the snapshot covers; their existing
	// grades and overrides are replaced wholesale.
	Programs []domain.Program
	// Skipped counts overrides dropped because the course already has a
	// recorded grade.
	Skipped int

	Program domain.Program
	Level   domain.Level
	Bias    *float64
}

// Convert turns a snapshot into grade records. Call ValidateSnapshot first;
// Convert assumes the snapshot is valid.
func Convert(s *Snapshot, now time.Time) *Converted {
	out := &Converted{
		Grades:    make(map[domain.Program][]*domain.GradeRecord),
		Overrides: make(map[domain.Program][]*domain.GradeRecord),
		Program:   domain.Program(s.Program),
		Level:     domain.Level(s.Level),
		Bias:      s.Bias,
	}

	seen := make(map[domain.Program]bool)
	for _, key := range append(sortedKeys(s.Grades), sortedKeys(s.Overrides)...) {
		p := domain.Program(key)
		if !seen[p] {
			seen[p] = true
			out.Programs = append(out.Programs, p)
		}
	}

	for _, key := range sortedKeys(s.Grades) {
		program := domain.Program(key)
		for _, name := range sortedKeys(s.Grades[key]) {
			g, _ := domain.ParseGrade(s.Grades[key][name])
			if g == domain.GradeNone {
				continue
			}
			out.Grades[program] = append(out.Grades[program], newRecord(program, name, g, now))
		}
	}

	for _, key := range sortedKeys(s.Overrides) {
		program := domain.Program(key)
		graded := make(map[string]bool, len(out.Grades[program]))
		for _, r := range out.Grades[program] {
			graded[r.CourseName] = true
		}
		for _, name := range sortedKeys(s.Overrides[key]) {
			g, _ := domain.ParseGrade(s.Overrides[key][name])
			if g == domain.GradeNone {
				continue
			}
			if graded[name] {
				out.Skipped++
				continue
			}
			out.Overrides[program] = append(out.Overrides[program], newRecord(program, name, g, now))
		}
	}

	return out
}

func newRecord(program domain.Program, name string, g domain.Grade, now time.Time) *domain.GradeRecord {
	return &domain.GradeRecord{
		ID:         uuid.New().String(),
		Program:    program,
		CourseName: name,
		Grade:      g,
		UpdatedAt:  now,
	}
}
