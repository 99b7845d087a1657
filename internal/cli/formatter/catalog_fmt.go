package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecast/internal/domain"
)

// FormatCatalog renders curriculum courses grouped by level, in order.
func FormatCatalog(program domain.Program, courses []domain.CatalogCourse) string {
	return formatByLevel("Catalog · "+program.Label(), courses, func(c domain.CatalogCourse) []string {
		return []string{c.Name, fmt.Sprintf("%d", c.Credits), ClusterBadge(c.Cluster)}
	}, []string{"COURSE", "CREDITS", "CLUSTER"})
}

// FormatGradeList renders every curriculum course with its recorded grade.
func FormatGradeList(program domain.Program, graded []domain.GradedCourse) string {
	byName := make(map[string]domain.Grade, len(graded))
	courses := make([]domain.CatalogCourse, len(graded))
	for i, g := range graded {
		courses[i] = g.CatalogCourse
		byName[g.Name] = g.Grade
	}
	return formatByLevel("Grades · "+program.Label(), courses, func(c domain.CatalogCourse) []string {
		g := byName[c.Name]
		points := "-"
		if g != domain.GradeNone {
			points = fmt.Sprintf("%d", g.Points())
		}
		return []string{c.Name, fmt.Sprintf("%d", c.Credits), GradeBadge(g), Dim(points)}
	}, []string{"COURSE", "CREDITS", "GRADE", "POINTS"})
}

// FormatOverrides renders the active what-if overrides.
func FormatOverrides(program domain.Program, records []*domain.GradeRecord) string {
	if len(records) == 0 {
		return Dim(fmt.Sprintf("No overrides for %s.", program.Label())) + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.CourseName, GradeBadge(r.Grade), Dim(r.UpdatedAt.Format("Jan 2, 2006"))})
	}
	return RenderBox("Overrides · "+program.Label(), RenderTable([]string{"COURSE", "GRADE", "SET"}, rows))
}

func formatByLevel(title string, courses []domain.CatalogCourse, row func(domain.CatalogCourse) []string, headers []string) string {
	var b strings.Builder
	first := true
	for _, level := range domain.AllLevels {
		var rows [][]string
		for _, c := range courses {
			if c.Level == level {
				rows = append(rows, row(c))
			}
		}
		if len(rows) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		b.WriteString(Header(level.Label()) + "\n")
		b.WriteString(Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{1: true}}.Render())
	}
	if first {
		b.WriteString(Dim("No courses.") + "\n")
	}
	return RenderBox(title, b.String())
}
