package engine

import (
	"fmt"
	"math"

	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/domain"
)

const (
	// MinPoint and MaxPoint bound every forecast: the lowest passing grade
	// and the top grade.
	MinPoint = 4.0
	MaxPoint = 10.0

	// MinBias and MaxBias are the range the CLI accepts for the bias.
	MinBias     = 0.8
	MaxBias     = 1.2
	DefaultBias = 1.0

	MaxInfluencers = 3

	trendMinHistory = 4
	trendFactor     = 0.2

	noDataPoints = 7.0
)

// Influencer is a top-weighted past course explaining a forecast.
type Influencer struct {
	Name     string
	Level    domain.Level
	Cluster  domain.SkillCluster
	Grade    domain.Grade
	Weight   float64
	SharePct int
}

type Prediction struct {
	PointEstimate float64
	Grade         domain.Grade
	ConfidencePct int
	Influencers   []Influencer
	// Trend is mean(second half) - mean(first half), or 0 with fewer than
	// four contributing courses.
	Trend      float64
	SampleSize int
}

// NoDataPrediction is the neutral baseline returned when the history has no
// contributing grades.
func NoDataPrediction() Prediction {
	return Prediction{
		PointEstimate: noDataPoints,
		Grade:         domain.GradeC,
		ConfidencePct: 0,
		Influencers:   []Influencer{},
	}
}

// Predictor forecasts grades from a student's history.
type Predictor struct {
	affinity Affinity
	weights  SimilarityWeights
}

// NewPredictor returns a Predictor using the given cluster affinity. A nil
// affinity treats every pair of distinct clusters as unrelated.
func NewPredictor(affinity Affinity) *Predictor {
	return &Predictor{affinity: affinity, weights: DefaultWeights()}
}

var defaultPredictor = NewPredictor(catalog.DefaultAffinity())

// Predict forecasts target with the curriculum's affinity graph.
func Predict(target domain.CatalogCourse, history []domain.GradedCourse, bias float64) (Prediction, error) {
	return defaultPredictor.Predict(target, history, bias)
}

// Predict estimates the grade for target from history.
//
// history must be in chronological order: the trend adjustment compares the
// first half of the contributing courses with the second half by position.
// bias scales the estimate before it is clamped to [MinPoint, MaxPoint].
func (p *Predictor) Predict(target domain.CatalogCourse, history []domain.GradedCourse, bias float64) (Prediction, error) {
	if math.IsNaN(bias) || math.IsInf(bias, 0) || bias <= 0 {
		return Prediction{}, &InputError{Index: -1, Field: "bias", Reason: fmt.Sprintf("must be a positive number, got %v", bias)}
	}
	if err := ValidateCourses(history); err != nil {
		return Prediction{}, err
	}

	completed := contributing(history)
	if len(completed) == 0 {
		return NoDataPrediction(), nil
	}

	scored := make([]ScoredCourse, len(completed))
	var totalWeight, weightedPoints float64
	for i, c := range completed {
		scored[i] = ScoreCourse(target, c, p.affinity, p.weights)
		totalWeight += scored[i].Weight
		weightedPoints += float64(c.Grade.Points()) * scored[i].Weight
	}

	base := weightedPoints / totalWeight
	trend := Trend(completed)
	base += trendFactor * trend

	estimate := clamp(base*bias, MinPoint, MaxPoint)

	confidence := int(math.Round(100 * totalWeight / float64(len(completed))))
	if confidence > 100 {
		confidence = 100
	}

	return Prediction{
		PointEstimate: Round2(estimate),
		Grade:         GradeForPoints(estimate),
		ConfidencePct: confidence,
		Influencers:   topInfluencers(scored),
		Trend:         trend,
		SampleSize:    len(completed),
	}, nil
}

// Trend splits contributing courses at len/2 (the extra element of an odd
// count lands in the second half) and returns the difference of the halves'
// unweighted mean points. Fewer than four courses carry no trend.
func Trend(completed []domain.GradedCourse) float64 {
	if len(completed) < trendMinHistory {
		return 0
	}
	mid := len(completed) / 2
	return meanPoints(completed[mid:]) - meanPoints(completed[:mid])
}

func meanPoints(courses []domain.GradedCourse) float64 {
	sum := 0
	for _, c := range courses {
		sum += c.Grade.Points()
	}
	return float64(sum) / float64(len(courses))
}

func topInfluencers(scored []ScoredCourse) []Influencer {
	ranked := RankByWeight(scored)
	if len(ranked) > MaxInfluencers {
		ranked = ranked[:MaxInfluencers]
	}

	var topWeight float64
	for _, s := range ranked {
		topWeight += s.Weight
	}

	out := make([]Influencer, len(ranked))
	for i, s := range ranked {
		out[i] = Influencer{
			Name:     s.Course.Name,
			Level:    s.Course.Level,
			Cluster:  s.Course.Cluster,
			Grade:    s.Course.Grade,
			Weight:   s.Weight,
			SharePct: int(math.Round(100 * s.Weight / topWeight)),
		}
	}
	return out
}

// GradeForPoints maps a point estimate to a passing letter grade. Each
// threshold is an inclusive lower bound.
func GradeForPoints(points float64) domain.Grade {
	switch {
	case points >= 9.5:
		return domain.GradeS
	case points >= 8.5:
		return domain.GradeA
	case points >= 7.5:
		return domain.GradeB
	case points >= 6.5:
		return domain.GradeC
	case points >= 5.5:
		return domain.GradeD
	default:
		return domain.GradeE
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
