package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecast/internal/contract"
)

const standingBarWidth = 12

// FormatStanding renders overall and per-level GPA for one program.
func FormatStanding(resp *contract.StandingResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold("CGPA"), FormatGPA(resp.Overall))
	fmt.Fprintf(&b, "%s  %d / %d  %s\n\n",
		Dim("Credits"),
		resp.Overall.TotalCredits,
		resp.CatalogCredits,
		RenderProgress(resp.ProgressPct/100, standingBarWidth),
	)

	rows := make([][]string, 0, len(resp.Levels))
	for _, l := range resp.Levels {
		rows = append(rows, []string{
			Bold(l.Level.Label()),
			FormatGPA(l.Stats),
			fmt.Sprintf("%d / %d", l.Stats.TotalCredits, l.CatalogCredits),
			fmt.Sprintf("%d / %d", l.GradedCount, l.CourseCount),
			RenderProgress(l.ProgressPct/100, standingBarWidth),
		})
	}
	b.WriteString(Table{
		Headers:    []string{"LEVEL", "GPA", "CREDITS", "GRADED", "PROGRESS"},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 2: true, 3: true},
	}.Render())

	return RenderBox("Standing · "+resp.Program.Label(), b.String())
}
