package threshold

import (
	"fmt"

	"otsu-thresholder/internal/models"
)

// BinaryApplier maps a grid onto a two-level mask around a threshold.
type BinaryApplier struct {
	Low  models.Intensity
	High models.Intensity
}

func NewBinaryApplier() *BinaryApplier {
	return &BinaryApplier{Low: 0, High: 255}
}

// Apply produces a mask grid with the same dimensions as the input: pixels
// at or below the threshold become Low, pixels above it become High.
func (a *BinaryApplier) Apply(grid *models.PixelGrid, t models.Intensity) (*models.PixelGrid, error) {
	if grid == nil {
		return nil, fmt.Errorf("input grid is nil")
	}

	mask := make([]models.Intensity, 0, grid.TotalPixels())
	grid.ForEach(func(v models.Intensity) {
		if v <= t {
			mask = append(mask, a.Low)
		} else {
			mask = append(mask, a.High)
		}
	})

	return models.NewGrid(grid.Rows(), grid.Cols(), mask)
}
