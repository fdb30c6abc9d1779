package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	region := Region{Center: New(-3.5, 0), Width: 4.8, Height: 6.8}

	set, err := Sample(60, region, NewSource(7))
	require.NoError(t, err)
	require.Equal(t, 60, set.Len())
	for _, p := range set.Points() {
		assert.True(t, region.Contains(p), "%v outside %+v", p, region)
	}

	again, err := Sample(60, region, NewSource(7))
	require.NoError(t, err)
	assert.Equal(t, set.Points(), again.Points(), "same seed must give the same field")

	other, err := Sample(60, region, NewSource(8))
	require.NoError(t, err)
	assert.NotEqual(t, set.Points(), other.Points())
}

func TestSample_Invalid(t *testing.T) {
	_, err := Sample(-1, NewRegion(1, 1), nil)
	assert.Error(t, err)

	_, err = Sample(10, NewRegion(0, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidRegion)

	set, err := Sample(0, NewRegion(1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}
