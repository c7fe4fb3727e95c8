package mdrnn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirection(t *testing.T) {
	dir, err := NewDirection(1, -1, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, dir.Rank())
	assert.Equal(t, 1, dir.Sign(0))
	assert.Equal(t, -1, dir.Sign(1))
	assert.True(t, dir.Ascending(0))
	assert.False(t, dir.Ascending(1))
	assert.True(t, dir.Ascending(2))
}

func TestNewDirectionRejectsInvalidSigns(t *testing.T) {
	for _, signs := range [][]int{{0}, {2}, {1, 0}, {-1, -2}, {}} {
		_, err := NewDirection(signs...)
		assert.ErrorIs(t, err, ErrConfiguration, "signs %v", signs)
	}
}

func TestForwardDirection(t *testing.T) {
	dir := Forward(4)
	require.Equal(t, 4, dir.Rank())
	for k := 0; k < 4; k++ {
		assert.True(t, dir.Ascending(k))
	}
}

func TestDirectionString(t *testing.T) {
	dir, err := NewDirection(1, -1)
	require.NoError(t, err)
	assert.Equal(t, "Direction(+1, -1)", dir.String())
}
