package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   []string
	}{
		{"zero points, nothing earned", 0, []string{}},
		{"first activity", 1, []string{"first-steps"}},
		{"mid ladder", 500, []string{"first-steps", "contributor", "champion"}},
		{"full ladder", 5000, []string{"first-steps", "contributor", "champion", "hero", "legend"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earned := Evaluate(tt.points)
			keys := make([]string, 0, len(earned))
			for _, b := range earned {
				keys = append(keys, b.Key)
			}
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestNewlyEarned(t *testing.T) {
	crossed := NewlyEarned(90, 520)
	require.Len(t, crossed, 2)
	assert.Equal(t, "contributor", crossed[0].Key)
	assert.Equal(t, "champion", crossed[1].Key)

	assert.Empty(t, NewlyEarned(100, 100), "no movement, nothing crossed")
	assert.Empty(t, NewlyEarned(600, 400), "losing points never re-awards")
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, LevelForPoints(0))
	assert.Equal(t, 1, LevelForPoints(249))
	assert.Equal(t, 2, LevelForPoints(250))
	assert.Equal(t, 5, LevelForPoints(1000))
	assert.Equal(t, 1, LevelForPoints(-10))
}
