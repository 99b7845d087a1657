package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradecast/internal/contract"
	"github.com/alexanderramin/gradecast/internal/domain"
)

const confidenceBarWidth = 8

// FormatForecast renders the forecast table with the projected CGPA summary.
func FormatForecast(resp *contract.ForecastResponse) string {
	var b strings.Builder
	writeForecastSummary(&b, resp)

	if len(resp.Forecasts) == 0 {
		b.WriteString(Dim("Every course in this selection is graded.") + "\n")
		return RenderBox("Forecast · "+resp.Program.Label(), b.String())
	}

	rows := make([][]string, 0, len(resp.Forecasts))
	for _, f := range resp.Forecasts {
		override := Dim("-")
		if f.Override != domain.GradeNone {
			override = GradeBadge(f.Override)
		}
		rows = append(rows, []string{
			f.Course.Name,
			Dim(f.Course.Level.Label()),
			fmt.Sprintf("%d", f.Course.Credits),
			GradeBadge(f.Prediction.Grade),
			FormatPoints(f.Prediction.PointEstimate),
			formatConfidence(f.Prediction.ConfidencePct),
			override,
		})
	}
	b.WriteString(Table{
		Headers:    []string{"COURSE", "LEVEL", "CR", "PRED", "POINTS", "CONFIDENCE", "OVERRIDE"},
		Rows:       rows,
		RightAlign: map[int]bool{2: true, 4: true},
	}.Render())

	return RenderBox("Forecast · "+resp.Program.Label(), b.String())
}

// FormatCourseForecast renders one forecast with the courses that drove it.
func FormatCourseForecast(resp *contract.ForecastResponse, f contract.CourseForecast) string {
	var b strings.Builder
	p := f.Prediction

	fmt.Fprintf(&b, "%s  %s\n", Bold(f.Course.Name), Dim(fmt.Sprintf("%s · %s · %d credits",
		f.Course.Level.Label(), f.Course.Cluster, f.Course.Credits)))
	fmt.Fprintf(&b, "%s  %s  %s\n", Dim("Predicted"), GradeBadge(p.Grade), FormatPoints(p.PointEstimate))
	fmt.Fprintf(&b, "%s %s\n", Dim("Confidence"), formatConfidence(p.ConfidencePct))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Bias"), FormatBias(resp.Bias))
	if f.Override != domain.GradeNone {
		fmt.Fprintf(&b, "%s  %s %s\n", Dim("Override"), GradeBadge(f.Override), Dim("(used in projection)"))
	}
	if p.Trend != 0 {
		fmt.Fprintf(&b, "%s  %+.2f\n", Dim("Trend"), p.Trend)
	}

	b.WriteString("\n")
	if len(p.Influencers) == 0 {
		b.WriteString(Dim("No graded courses yet: neutral baseline.") + "\n")
		return RenderBox("Forecast", b.String())
	}

	b.WriteString(Header("Influenced by") + "\n")
	rows := make([][]string, 0, len(p.Influencers))
	for _, inf := range p.Influencers {
		rows = append(rows, []string{
			inf.Name,
			Dim(inf.Level.Label()),
			ClusterBadge(inf.Cluster),
			GradeBadge(inf.Grade),
			fmt.Sprintf("%d%%", inf.SharePct),
		})
	}
	b.WriteString(Table{
		Headers:    []string{"COURSE", "LEVEL", "CLUSTER", "GRADE", "SHARE"},
		Rows:       rows,
		RightAlign: map[int]bool{4: true},
	}.Render())
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("Based on %d graded course(s).", p.SampleSize)))

	return RenderBox("Forecast", b.String())
}

func writeForecastSummary(b *strings.Builder, resp *contract.ForecastResponse) {
	fmt.Fprintf(b, "%s  %s  %s  %s  %s\n",
		Dim("Current"), FormatGPA(resp.Current),
		Dim("Projected"), FormatGPA(resp.Projected),
		FormatGain(resp.Gain()),
	)
	fmt.Fprintf(b, "%s  %s\n\n", Dim("Bias"), FormatBias(resp.Bias))
}

func formatConfidence(pct int) string {
	return fmt.Sprintf("%s %3d%%", RenderCompactBar(float64(pct)/100, confidenceBarWidth), pct)
}
