package domain

import "strings"

// NormalizeSkillKey converts a raw skill label into the canonical key used
// everywhere a skill is matched or weighted: lower-cased, spaces replaced
// with underscores, dots removed. "Node.js" and "node js" both map to
// "nodejs"-style keys, so the same skill always lands on the same key
// regardless of which ingestion or profile path produced it.
func NormalizeSkillKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, ".", "")
	return key
}

// NormalizeSkillKeys maps a skill list to its distinct normalized keys,
// dropping labels that normalize to the empty string.
func NormalizeSkillKeys(skills []string) map[string]struct{} {
	keys := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		key := NormalizeSkillKey(skill)
		if key == "" {
			continue
		}
		keys[key] = struct{}{}
	}
	return keys
}
