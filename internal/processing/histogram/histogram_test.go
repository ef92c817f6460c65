package histogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otsu-thresholder/internal/models"
)

func TestBuildCountsUniqueIntensities(t *testing.T) {
	t.Parallel()

	grid, err := models.NewGridUint8([][]uint8{
		{5, 5, 2},
		{9, 2, 5},
	})
	require.NoError(t, err)

	dist, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	assert.Equal(t, []models.Intensity{2, 5, 9}, dist.Intensities)
	assert.Equal(t, []int{2, 3, 1}, dist.Counts)
	assert.Equal(t, 6, dist.TotalPixels)
	assert.Equal(t, 3, dist.UniqueCount())
}

func TestBuildProbabilitiesSumToOne(t *testing.T) {
	t.Parallel()

	grid, err := models.NewGridUint8([][]uint8{
		{0, 1, 2, 3},
		{0, 0, 3, 3},
	})
	require.NoError(t, err)

	dist, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	sum := 0.0
	total := 0
	for i, p := range dist.Probabilities {
		assert.Positive(t, p)
		sum += p
		total += dist.Counts[i]
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Equal(t, dist.TotalPixels, total)
}

func TestBuildSingleIntensity(t *testing.T) {
	t.Parallel()

	grid, err := models.NewGridUint8([][]uint8{{7, 7}, {7, 7}})
	require.NoError(t, err)

	dist, err := NewBuilder().Build(grid)
	require.NoError(t, err)

	assert.Equal(t, []models.Intensity{7}, dist.Intensities)
	assert.Equal(t, []int{4}, dist.Counts)
	assert.Equal(t, []float64{1.0}, dist.Probabilities)
}

func TestBuildNilGrid(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder().Build(nil)
	assert.Error(t, err)
}
