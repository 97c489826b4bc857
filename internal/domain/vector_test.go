package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{name: "identical_vectors", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal_vectors", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite_vectors", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "nil_vector", a: nil, b: []float32{1, 0}, want: 0},
		{name: "empty_vector", a: []float32{}, b: []float32{1, 0}, want: 0},
		{name: "dimension_mismatch", a: []float32{1, 0}, b: []float32{1, 0, 0}, want: 0},
		{name: "zero_norm", a: []float32{0, 0}, b: []float32{1, 0}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CosineSimilarity(tc.a, tc.b), 0.0001)
		})
	}
}
