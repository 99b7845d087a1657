package catalog

import "github.com/alexanderramin/gradecast/internal/domain"

// relatedClusters declares, for each cluster, which other clusters count as
// related when forecasting a course in it. The relation is asymmetric and
// must stay that way: Project lists Programming, Programming does not list
// Project.
var relatedClusters = map[domain.SkillCluster][]domain.SkillCluster{
	domain.ClusterMathematics: {domain.ClusterStatistics, domain.ClusterML, domain.ClusterElectronics, domain.ClusterProgramming},
	domain.ClusterStatistics:  {domain.ClusterMathematics, domain.ClusterML, domain.ClusterBusiness},
	domain.ClusterProgramming: {domain.ClusterDatabase, domain.ClusterML, domain.ClusterSystems, domain.ClusterMathematics},
	domain.ClusterML:          {domain.ClusterMathematics, domain.ClusterStatistics, domain.ClusterProgramming, domain.ClusterDatabase},
	domain.ClusterElectronics: {domain.ClusterMathematics, domain.ClusterSystems, domain.ClusterProgramming},
	domain.ClusterSystems:     {domain.ClusterElectronics, domain.ClusterProgramming, domain.ClusterMathematics},
	domain.ClusterDatabase:    {domain.ClusterProgramming, domain.ClusterBusiness, domain.ClusterML},
	domain.ClusterBusiness:    {domain.ClusterStatistics, domain.ClusterDatabase},
	domain.ClusterEnglish:     {domain.ClusterGeneral},
	domain.ClusterProject:     {domain.ClusterProgramming, domain.ClusterML, domain.ClusterElectronics, domain.ClusterSystems},
	domain.ClusterGeneral:     {domain.ClusterEnglish},
}

// AffinityGraph answers cluster relatedness questions. The zero value has no
// edges, so every lookup reports unrelated.
type AffinityGraph struct {
	edges map[domain.SkillCluster]map[domain.SkillCluster]bool
}

// NewAffinityGraph builds a graph from per-cluster adjacency lists. Edges are
// taken exactly as declared; nothing is mirrored.
func NewAffinityGraph(decl map[domain.SkillCluster][]domain.SkillCluster) AffinityGraph {
	edges := make(map[domain.SkillCluster]map[domain.SkillCluster]bool, len(decl))
	for from, tos := range decl {
		set := make(map[domain.SkillCluster]bool, len(tos))
		for _, to := range tos {
			set[to] = true
		}
		edges[from] = set
	}
	return AffinityGraph{edges: edges}
}

// IsRelated reports whether other appears in target's declared related set.
// Unknown target clusters have an empty set.
func (g AffinityGraph) IsRelated(target, other domain.SkillCluster) bool {
	return g.edges[target][other]
}

// Related returns a copy of the declared related set for c, in declaration order.
func Related(c domain.SkillCluster) []domain.SkillCluster {
	src := relatedClusters[c]
	out := make([]domain.SkillCluster, len(src))
	copy(out, src)
	return out
}

var defaultAffinity = NewAffinityGraph(relatedClusters)

// DefaultAffinity returns the graph built from the curriculum's declared relations.
func DefaultAffinity() AffinityGraph {
	return defaultAffinity
}
