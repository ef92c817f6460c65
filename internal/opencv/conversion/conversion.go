// Package conversion bridges GoCV Mats and pixel grids so OpenCV-sourced
// grayscale data can be thresholded without copying through an intermediate
// image format.
package conversion

import (
	"fmt"

	"gocv.io/x/gocv"

	"otsu-thresholder/internal/models"
)

// MatToGrid copies a single-channel 8-bit Mat into a pixel grid.
func MatToGrid(src gocv.Mat) (*models.PixelGrid, error) {
	if src.Empty() {
		return nil, fmt.Errorf("source Mat is empty")
	}
	if src.Channels() != 1 {
		return nil, fmt.Errorf("unsupported channel count: %d, convert to single-channel grayscale first", src.Channels())
	}
	if src.Type() != gocv.MatTypeCV8U {
		return nil, &models.InvalidPixelTypeError{TypeName: fmt.Sprintf("Mat type %d", src.Type())}
	}

	rows := src.Rows()
	cols := src.Cols()
	pixels := make([]models.Intensity, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pixels = append(pixels, models.Intensity(src.GetUCharAt(y, x)))
		}
	}

	return models.NewGrid(rows, cols, pixels)
}

// GridToMat copies a pixel grid into a new single-channel 8-bit Mat. Grids
// holding intensities above 255 cannot be represented and are rejected. The
// caller owns the returned Mat and must Close it.
func GridToMat(grid *models.PixelGrid) (gocv.Mat, error) {
	if grid == nil {
		return gocv.Mat{}, fmt.Errorf("input grid is nil")
	}

	dst := gocv.NewMatWithSize(grid.Rows(), grid.Cols(), gocv.MatTypeCV8UC1)
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			v := grid.At(y, x)
			if v > 255 {
				dst.Close()
				return gocv.Mat{}, fmt.Errorf("intensity %d at (%d,%d) exceeds 8-bit range", v, x, y)
			}
			dst.SetUCharAt(y, x, uint8(v))
		}
	}

	return dst, nil
}
