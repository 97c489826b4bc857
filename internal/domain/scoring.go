package domain

import "sort"

// RecommendationWeights blends the three recommendation signals into a total
// score. The weights should sum to 1; Normalize rescales them when they do not.
type RecommendationWeights struct {
	Content  float64
	Graph    float64
	Semantic float64
}

// DefaultRecommendationWeights favours the collaborative signal slightly over
// content matching and semantic similarity.
func DefaultRecommendationWeights() RecommendationWeights {
	return RecommendationWeights{Content: 0.3, Graph: 0.4, Semantic: 0.3}
}

// Normalize returns weights rescaled to sum to 1 and whether rescaling was
// applied. Weights already summing to within [0.99, 1.01] pass through
// unchanged; a non-positive sum falls back to the defaults.
func (w RecommendationWeights) Normalize() (RecommendationWeights, bool) {
	sum := w.Content + w.Graph + w.Semantic
	if sum >= 0.99 && sum <= 1.01 {
		return w, false
	}
	if sum <= 0 {
		return DefaultRecommendationWeights(), true
	}
	return RecommendationWeights{
		Content:  w.Content / sum,
		Graph:    w.Graph / sum,
		Semantic: w.Semantic / sum,
	}, true
}

// NormalizeScores rescales a score mapping into [0,1] by dividing every value
// by the maximum. Empty mappings and mappings whose maximum is not positive
// are returned unchanged. Normalizing an already-normalized mapping is a
// no-op.
func NormalizeScores(scores map[string]float64) map[string]float64 {
	if len(scores) == 0 {
		return scores
	}

	max := 0.0
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return scores
	}

	normalized := make(map[string]float64, len(scores))
	for k, v := range scores {
		normalized[k] = v / max
	}
	return normalized
}

// SkillMatchScores computes the content-matching signal: per vacancy, the
// fraction of its required skills present in the user's skill set, compared
// over normalized skill keys. Vacancies with no required skills are excluded
// from the result entirely rather than scored as zero. An empty user skill
// set scores every remaining vacancy at 0.
func SkillMatchScores(userSkills []string, sets []VacancySkillSet) map[string]float64 {
	userKeys := NormalizeSkillKeys(userSkills)

	scores := make(map[string]float64, len(sets))
	for _, set := range sets {
		required := NormalizeSkillKeys(set.Skills)
		if len(required) == 0 {
			continue
		}

		matches := 0
		for key := range required {
			if _, ok := userKeys[key]; ok {
				matches++
			}
		}

		scores[set.VacancyID] = float64(matches) / float64(len(required))
	}
	return scores
}

// RankedVacancy is a vacancy ID with its per-signal and combined scores.
type RankedVacancy struct {
	VacancyID     string
	ContentScore  float64
	GraphScore    float64
	SemanticScore float64
	TotalScore    float64
}

// CombineScores merges the three normalized signal mappings over the union of
// their vacancy IDs; a vacancy missing from a signal contributes 0 for that
// component. The result is ordered by total score descending, ties broken by
// vacancy ID ascending so rankings are deterministic.
func CombineScores(content, graph, semantic map[string]float64, weights RecommendationWeights) []RankedVacancy {
	ids := make(map[string]struct{}, len(content)+len(graph)+len(semantic))
	for id := range content {
		ids[id] = struct{}{}
	}
	for id := range graph {
		ids[id] = struct{}{}
	}
	for id := range semantic {
		ids[id] = struct{}{}
	}

	ranked := make([]RankedVacancy, 0, len(ids))
	for id := range ids {
		r := RankedVacancy{
			VacancyID:     id,
			ContentScore:  content[id],
			GraphScore:    graph[id],
			SemanticScore: semantic[id],
		}
		r.TotalScore = weights.Content*r.ContentScore +
			weights.Graph*r.GraphScore +
			weights.Semantic*r.SemanticScore
		ranked = append(ranked, r)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].VacancyID < ranked[j].VacancyID
	})

	return ranked
}
