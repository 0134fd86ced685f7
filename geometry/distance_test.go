package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceToLine(t *testing.T) {
	tests := []struct {
		name              string
		point, start, end Vector
		want              string
	}{
		{"above x axis", vec(t, 0, 1), vec(t, 0, 0), vec(t, 2, 0), "1"},
		{"beyond segment end", vec(t, 3, 4), vec(t, 0, 0), vec(t, 1, 0), "4"},
		{"on the line", vec(t, 5, 5), vec(t, 1, 1), vec(t, 2, 2), "0"},
		{"three dimensions", vec(t, 0, 0, 7), vec(t, 1, 0, 0), vec(t, 0, 1, 0), "7.035533905932738"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DistanceToLine(tt.point, tt.start, tt.end)
			require.NoError(t, err)
			assert.InDelta(t, dec(tt.want).InexactFloat64(), got.InexactFloat64(), 1e-9)
		})
	}

	_, err := DistanceToLine(vec(t, 1, 1), vec(t, 2, 2), vec(t, 2, 2))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = DistanceToLine(vec(t, 1, 1, 1), vec(t, 0, 0), vec(t, 1, 0))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestReflect(t *testing.T) {
	reflected, err := vec(t, 1, -1).Reflect(vec(t, 0, 1))
	require.NoError(t, err)
	assert.True(t, reflected.Equal(vec(t, 1, 1)))

	reflected, err = vec(t, 2, 3, -4).Reflect(vec(t, 0, 0, 5))
	require.NoError(t, err)
	assert.True(t, reflected.Equal(vec(t, 2, 3, 4)))

	_, err = vec(t, 1, 2).Reflect(vec(t, 0, 0))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = vec(t, 1, 2).Reflect(vec(t, 0, 0, 1))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
