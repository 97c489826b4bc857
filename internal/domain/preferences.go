package domain

import "math"

// FeedbackConfig holds the preference-learning tunables. Both values are in
// [0,1]. Changes apply to subsequent updates only, never retroactively.
type FeedbackConfig struct {
	// LearningRate scales how far a single feedback event moves skill weights.
	LearningRate float64

	// RegularizationLambda decays updated weights towards zero so stale
	// preferences fade unless reinforced.
	RegularizationLambda float64
}

// DefaultFeedbackConfig returns the standard preference-learning tunables.
func DefaultFeedbackConfig() FeedbackConfig {
	return FeedbackConfig{
		LearningRate:         0.1,
		RegularizationLambda: 0.01,
	}
}

// UpdatePreferences applies one LIKED/DISLIKED feedback event to a user's
// preference weights and returns the full updated mapping. The event's weight
// is split evenly across the vacancy's skills; each touched key moves by
// ±learningRate/len(skills), is decayed by the regularization factor, and is
// clamped into [0,1]. Keys not touched by this event keep their prior value.
// A vacancy with no skills leaves the mapping unchanged.
func UpdatePreferences(current map[string]float64, kind FeedbackKind, skills []string, cfg FeedbackConfig) map[string]float64 {
	updated := make(map[string]float64, len(current)+len(skills))
	for key, weight := range current {
		updated[key] = weight
	}

	if len(skills) == 0 {
		return updated
	}

	weightPerSkill := 1.0 / float64(len(skills))

	for _, skill := range skills {
		key := NormalizeSkillKey(skill)
		if key == "" {
			continue
		}

		delta := cfg.LearningRate * weightPerSkill
		if kind == FeedbackDisliked {
			delta = -delta
		}

		weight := (updated[key] + delta) * (1 - cfg.RegularizationLambda)
		updated[key] = math.Min(1, math.Max(0, weight))
	}

	return updated
}
