package engine

import (
	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/domain"
)

// SimilarityWeights is the convex combination applied to the sub-scores.
// Topical similarity dominates, stage proximity is secondary and program
// match breaks ties.
type SimilarityWeights struct {
	Cluster float64
	Level   float64
	Domain  float64
}

func DefaultWeights() SimilarityWeights {
	return SimilarityWeights{
		Cluster: 0.5,
		Level:   0.3,
		Domain:  0.2,
	}
}

const (
	clusterSame      = 1.0
	clusterRelated   = 0.6
	clusterUnrelated = 0.2

	levelSame      = 1.0
	levelStepDecay = 0.2
	levelFloor     = 0.4

	domainSame  = 1.0
	domainOther = 0.5
)

// Affinity reports whether other is in target's declared related set.
type Affinity interface {
	IsRelated(target, other domain.SkillCluster) bool
}

// ScoredCourse is one past course with its similarity to a forecast target.
type ScoredCourse struct {
	Course       domain.GradedCourse
	ClusterScore float64
	LevelScore   float64
	DomainScore  float64
	Weight       float64
}

// ScoreCourse rates how much a past course says about the target.
func ScoreCourse(target domain.CatalogCourse, past domain.GradedCourse, affinity Affinity, weights SimilarityWeights) ScoredCourse {
	if affinity == nil {
		affinity = catalog.AffinityGraph{}
	}
	s := ScoredCourse{
		Course:       past,
		ClusterScore: scoreCluster(target.Cluster, past.Cluster, affinity),
		LevelScore:   scoreLevel(target.Level, past.Level),
		DomainScore:  scoreDomain(target.Program, past.Program),
	}
	s.Weight = weights.Cluster*s.ClusterScore + weights.Level*s.LevelScore + weights.Domain*s.DomainScore
	return s
}

func scoreCluster(target, past domain.SkillCluster, affinity Affinity) float64 {
	switch {
	case past == target:
		return clusterSame
	case affinity.IsRelated(target, past):
		return clusterRelated
	default:
		return clusterUnrelated
	}
}

// scoreLevel decays linearly with how many stages the past course precedes
// the target. Later or unknown stages get the floor.
func scoreLevel(target, past domain.Level) float64 {
	fv, pv := target.Ordinal(), past.Ordinal()
	switch {
	case fv == 0 || pv == 0:
		return levelFloor
	case pv == fv:
		return levelSame
	case pv < fv:
		return levelSame - levelStepDecay*float64(fv-pv)
	default:
		return levelFloor
	}
}

func scoreDomain(target, past domain.Program) float64 {
	if past == target {
		return domainSame
	}
	return domainOther
}
