package cli

import (
	"strconv"

	"github.com/alexanderramin/gradecast/internal/cli/formatter"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func gradecastHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// gradeOptions lists every recordable grade with its point value.
func gradeOptions() []huh.Option[domain.Grade] {
	opts := make([]huh.Option[domain.Grade], 0, len(domain.AllGrades))
	for _, g := range domain.AllGrades {
		label := string(g)
		if g.Contributing() {
			label += "  " + formatter.Dim("("+strconv.Itoa(g.Points())+" points)")
		} else {
			label += "  " + formatter.Dim("(does not count)")
		}
		opts = append(opts, huh.NewOption(label, g))
	}
	return opts
}

// gradePickerForm returns a themed select for one course's grade.
func gradePickerForm(course string, value *domain.Grade) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Grade]().
				Title("Grade for " + course).
				Options(gradeOptions()...).
				Value(value),
		),
	).WithTheme(gradecastHuhTheme()).WithShowHelp(false)
}

func pickGradeInteractive(course string) (domain.Grade, error) {
	g := domain.GradeA
	if err := gradePickerForm(course, &g).Run(); err != nil {
		return domain.GradeNone, err
	}
	return g, nil
}
