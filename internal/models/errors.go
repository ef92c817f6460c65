package models

import "fmt"

// InvalidPixelTypeError reports an input whose element type is not an
// unsigned integer kind. It is returned before any computation begins;
// the caller is expected to convert the image representation and retry.
type InvalidPixelTypeError struct {
	TypeName string
}

func (e *InvalidPixelTypeError) Error() string {
	return fmt.Sprintf("image type = %s: convert the image to unsigned integers", e.TypeName)
}

// DimensionError reports a grid with no rows, no columns, or ragged rows.
type DimensionError struct {
	Rows   int
	Cols   int
	Ragged bool
	Row    int
	Got    int
}

func (e *DimensionError) Error() string {
	if e.Ragged {
		return fmt.Sprintf("ragged grid: row %d has %d columns, expected %d", e.Row, e.Got, e.Cols)
	}
	return fmt.Sprintf("invalid grid dimensions: %dx%d", e.Cols, e.Rows)
}
