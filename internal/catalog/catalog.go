// Package catalog holds the static curriculum: required courses per program
// and level, and the skill-cluster affinity graph. All tables are built once
// at package initialisation and only handed out as copies.
package catalog

import "github.com/alexanderramin/gradecast/internal/domain"

// Catalog indexes the curriculum tables.
type Catalog struct {
	byLevel map[domain.Program]map[domain.Level][]domain.CatalogCourse
	byName  map[domain.Program]map[string]domain.CatalogCourse
}

func build() *Catalog {
	c := &Catalog{
		byLevel: make(map[domain.Program]map[domain.Level][]domain.CatalogCourse),
		byName:  make(map[domain.Program]map[string]domain.CatalogCourse),
	}
	for _, program := range domain.AllPrograms {
		c.byLevel[program] = make(map[domain.Level][]domain.CatalogCourse)
		c.byName[program] = make(map[string]domain.CatalogCourse)
		for _, level := range domain.AllLevels {
			for _, e := range curriculum[program][level] {
				course := domain.CatalogCourse{
					Name:    e.name,
					Credits: e.credits,
					Cluster: e.cluster,
					Program: program,
					Level:   level,
				}
				c.byLevel[program][level] = append(c.byLevel[program][level], course)
				c.byName[program][e.name] = course
			}
		}
	}
	return c
}

var defaultCatalog = build()

// Default returns the process-wide curriculum.
func Default() *Catalog {
	return defaultCatalog
}

// Courses returns the courses for one program and level in curriculum order.
func (c *Catalog) Courses(program domain.Program, level domain.Level) []domain.CatalogCourse {
	src := c.byLevel[program][level]
	out := make([]domain.CatalogCourse, len(src))
	copy(out, src)
	return out
}

// ProgramCourses returns every course of a program, level by level.
func (c *Catalog) ProgramCourses(program domain.Program) []domain.CatalogCourse {
	var out []domain.CatalogCourse
	for _, level := range domain.AllLevels {
		out = append(out, c.byLevel[program][level]...)
	}
	return out
}

// Lookup finds a course by exact name within a program.
func (c *Catalog) Lookup(program domain.Program, name string) (domain.CatalogCourse, bool) {
	course, ok := c.byName[program][name]
	return course, ok
}

// TotalCredits sums the credit weight of every course in a program.
func (c *Catalog) TotalCredits(program domain.Program) int {
	total := 0
	for _, course := range c.ProgramCourses(program) {
		total += course.Credits
	}
	return total
}
