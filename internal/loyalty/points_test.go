package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsEarned(t *testing.T) {
	cases := []struct {
		total int64
		want  int64
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{1999, 1},
		{15500, 15},
		{125000, 125},
		{-5000, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, PointsEarned(tc.total), "total=%d", tc.total)
	}
}
