package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// GradeStyle colors grades by band: S/A green, B/C blue, D/E yellow,
// U red, everything administrative dim.
func GradeStyle(g domain.Grade) lipgloss.Style {
	switch g {
	case domain.GradeS, domain.GradeA:
		return StyleGreen
	case domain.GradeB, domain.GradeC:
		return StyleBlue
	case domain.GradeD, domain.GradeE:
		return StyleYellow
	case domain.GradeU:
		return StyleRed
	default:
		return StyleDim
	}
}

// GradeBadge renders a grade, or a dim dash when absent.
func GradeBadge(g domain.Grade) string {
	if g == domain.GradeNone {
		return StyleDim.Render("-")
	}
	return GradeStyle(g).Bold(true).Render(string(g))
}

// GPAStyle colors a GPA on the 10-point scale.
func GPAStyle(gpa float64) lipgloss.Style {
	switch {
	case gpa == 0:
		return StyleDim
	case gpa >= 8.5:
		return StyleGreen
	case gpa >= 7:
		return StyleBlue
	default:
		return StyleYellow
	}
}

// ClusterBadge renders a skill cluster in purple.
func ClusterBadge(c domain.SkillCluster) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(c))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
