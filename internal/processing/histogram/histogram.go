package histogram

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"otsu-thresholder/internal/models"
)

// Distribution holds the intensity histogram of a grid: the sorted unique
// intensities present in the image, their occurrence counts, and the counts
// normalized to a probability distribution.
type Distribution struct {
	Intensities   []models.Intensity
	Counts        []int
	Probabilities []float64
	TotalPixels   int
}

// UniqueCount returns the number of distinct intensities in the image.
func (d *Distribution) UniqueCount() int {
	return len(d.Intensities)
}

// Builder extracts intensity distributions from pixel grids.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build counts every distinct intensity in the grid and normalizes the
// counts by the total pixel count. Counts sum to TotalPixels and
// probabilities sum to 1.
func (b *Builder) Build(grid *models.PixelGrid) (*Distribution, error) {
	if grid == nil {
		return nil, fmt.Errorf("input grid is nil")
	}

	counts := make(map[models.Intensity]int)
	grid.ForEach(func(v models.Intensity) {
		counts[v]++
	})

	intensities := make([]models.Intensity, 0, len(counts))
	for v := range counts {
		intensities = append(intensities, v)
	}
	sort.Slice(intensities, func(i, j int) bool { return intensities[i] < intensities[j] })

	dist := &Distribution{
		Intensities:   intensities,
		Counts:        make([]int, len(intensities)),
		Probabilities: make([]float64, len(intensities)),
		TotalPixels:   grid.TotalPixels(),
	}

	for i, v := range intensities {
		dist.Counts[i] = counts[v]
		dist.Probabilities[i] = float64(counts[v])
	}
	floats.Scale(1/float64(dist.TotalPixels), dist.Probabilities)

	return dist, nil
}
