package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillKey(t *testing.T) {
	cases := []struct {
		name  string
		skill string
		want  string
	}{
		{name: "lowercases", skill: "Go", want: "go"},
		{name: "spaces_become_underscores", skill: "Machine Learning", want: "machine_learning"},
		{name: "dots_removed", skill: "Node.js", want: "nodejs"},
		{name: "combined", skill: "ASP.NET Core", want: "aspnet_core"},
		{name: "surrounding_whitespace_trimmed", skill: "  SQL  ", want: "sql"},
		{name: "empty_stays_empty", skill: "", want: ""},
		{name: "whitespace_only_becomes_empty", skill: "   ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSkillKey(tc.skill))
		})
	}
}

func TestNormalizeSkillKeys(t *testing.T) {
	keys := NormalizeSkillKeys([]string{"Go", "go", "Machine Learning", ""})

	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "go")
	assert.Contains(t, keys, "machine_learning")
}
