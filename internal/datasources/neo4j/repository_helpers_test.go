package neo4j

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVectorParamAsVector_RoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		embedding []float32
	}{
		{
			name:      "nil",
			embedding: nil,
		},
		{
			name:      "empty",
			embedding: []float32{},
		},
		{
			name:      "single",
			embedding: []float32{1.5},
		},
		{
			name:      "multiple",
			embedding: []float32{0.1, 0.2, 0.3, -0.5, 100.0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			param := vectorParam(tc.embedding)

			// The driver hands list properties back as []any of float64.
			var row any
			if floats, ok := param.([]float64); ok {
				items := make([]any, 0, len(floats))
				for _, f := range floats {
					items = append(items, f)
				}
				row = items
			}

			result := asVector(row)
			if len(tc.embedding) == 0 {
				assert.Nil(t, param)
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tc.embedding, result)
			}
		})
	}
}

func TestAsVector_Invalid(t *testing.T) {
	cases := []struct {
		name string
		v    any
	}{
		{
			name: "nil",
			v:    nil,
		},
		{
			name: "not_a_list",
			v:    "0.1,0.2",
		},
		{
			name: "non_float_element",
			v:    []any{0.1, "0.2", 0.3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, asVector(tc.v))
		})
	}
}

func TestTimeParamAsTime_RoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{
			name:     "zero_time_stored_blank",
			in:       time.Time{},
			expected: time.Time{},
		},
		{
			name:     "utc",
			in:       time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "offset_normalized_to_utc",
			in:       time.Date(2025, 6, 15, 13, 30, 0, 0, time.FixedZone("MSK", 3*60*60)),
			expected: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stored := timeParam(tc.in)
			assert.True(t, tc.expected.Equal(asTime(stored)))
		})
	}
}

func TestAsTime_Invalid(t *testing.T) {
	cases := []struct {
		name string
		v    any
	}{
		{
			name: "nil",
			v:    nil,
		},
		{
			name: "empty_string",
			v:    "",
		},
		{
			name: "garbage",
			v:    "yesterday",
		},
		{
			name: "not_a_string",
			v:    int64(1718447400),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, asTime(tc.v).IsZero())
		})
	}
}

func TestAsInt(t *testing.T) {
	cases := []struct {
		name     string
		v        any
		expected int
	}{
		{
			name:     "int64",
			v:        int64(42),
			expected: 42,
		},
		{
			name:     "float64",
			v:        float64(7),
			expected: 7,
		},
		{
			name:     "nil",
			v:        nil,
			expected: 0,
		},
		{
			name:     "string",
			v:        "42",
			expected: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, asInt(tc.v))
		})
	}
}

func TestAsFloatPtr(t *testing.T) {
	f := 150000.0
	assert.Equal(t, &f, asFloatPtr(150000.0))
	assert.Nil(t, asFloatPtr(nil))
	assert.Nil(t, asFloatPtr("150000"))
}

func TestAsStringSlice(t *testing.T) {
	cases := []struct {
		name     string
		v        any
		expected []string
	}{
		{
			name:     "strings",
			v:        []any{"Go", "SQL"},
			expected: []string{"Go", "SQL"},
		},
		{
			name:     "mixed_elements_filtered",
			v:        []any{"Go", int64(1), "SQL"},
			expected: []string{"Go", "SQL"},
		},
		{
			name:     "nil",
			v:        nil,
			expected: nil,
		},
		{
			name:     "not_a_list",
			v:        "Go,SQL",
			expected: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, asStringSlice(tc.v))
		})
	}
}
