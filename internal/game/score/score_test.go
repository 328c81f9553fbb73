package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuesserAward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank int
		want int
	}{
		{1, 100},
		{2, 75},
		{3, 50},
		{4, 25},
		{5, 10}, // floor
		{9, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GuesserAward(tt.rank), "rank=%d", tt.rank)
	}
}
