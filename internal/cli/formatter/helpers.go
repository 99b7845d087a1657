package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatGPA renders the GPA of stats, or a dim dash when nothing counts yet.
func FormatGPA(stats engine.Stats) string {
	if stats.TotalCredits == 0 {
		return Dim("--")
	}
	return GPAStyle(stats.GPA).Bold(true).Render(fmt.Sprintf("%.2f", stats.GPA))
}

// FormatPoints renders a point estimate with two decimals.
func FormatPoints(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

// BiasLabel names the forecast stance a bias value represents.
func BiasLabel(bias float64) string {
	switch {
	case bias < engine.DefaultBias:
		return "Conservative"
	case bias > engine.DefaultBias:
		return "Optimistic"
	default:
		return "Balanced"
	}
}

// FormatBias renders a bias like "1.10 (Optimistic)".
func FormatBias(bias float64) string {
	label := BiasLabel(bias)
	style := StyleGreen
	switch label {
	case "Conservative":
		style = StyleYellow
	case "Optimistic":
		style = StylePurple
	}
	return fmt.Sprintf("%.2f %s", bias, style.Render("("+label+")"))
}

// FormatGain renders a signed GPA delta such as "+0.35".
func FormatGain(gain float64) string {
	if gain <= 0 {
		return Dim("+0.00")
	}
	return StyleGreen.Render(fmt.Sprintf("+%.2f", gain))
}
