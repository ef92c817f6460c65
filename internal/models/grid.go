package models

import (
	"fmt"
	"image"
)

// Intensity is the pixel intensity domain. It is wide enough to hold any
// unsigned integer kind accepted at the construction boundary.
type Intensity uint64

// PixelGrid is an immutable rows x cols grid of pixel intensities. All
// constructors copy their input, so a grid never aliases caller memory.
type PixelGrid struct {
	rows   int
	cols   int
	pixels []Intensity
}

// NewGrid builds a grid from row-major pixel data. The pixel slice is copied.
func NewGrid(rows, cols int, pixels []Intensity) (*PixelGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &DimensionError{Rows: rows, Cols: cols}
	}
	if len(pixels) != rows*cols {
		return nil, fmt.Errorf("pixel count %d does not match dimensions %dx%d", len(pixels), cols, rows)
	}

	data := make([]Intensity, len(pixels))
	copy(data, pixels)

	return &PixelGrid{rows: rows, cols: cols, pixels: data}, nil
}

// GridFrom performs the acceptable-type check at the construction boundary.
// It accepts 2D slices of any unsigned integer kind and rejects signed and
// floating-point element types with an InvalidPixelTypeError naming the
// offending type. An existing *PixelGrid passes through unchanged.
func GridFrom(img any) (*PixelGrid, error) {
	switch v := img.(type) {
	case *PixelGrid:
		if v == nil {
			return nil, fmt.Errorf("input grid is nil")
		}
		return v, nil
	case [][]uint8:
		return gridFromRows(v, func(px uint8) Intensity { return Intensity(px) })
	case [][]uint16:
		return gridFromRows(v, func(px uint16) Intensity { return Intensity(px) })
	case [][]uint32:
		return gridFromRows(v, func(px uint32) Intensity { return Intensity(px) })
	case [][]uint64:
		return gridFromRows(v, func(px uint64) Intensity { return Intensity(px) })
	case [][]uint:
		return gridFromRows(v, func(px uint) Intensity { return Intensity(px) })
	case [][]Intensity:
		return gridFromRows(v, func(px Intensity) Intensity { return px })
	case *image.Gray:
		return FromGray(v)
	case [][]int:
		return nil, &InvalidPixelTypeError{TypeName: "int"}
	case [][]int8:
		return nil, &InvalidPixelTypeError{TypeName: "int8"}
	case [][]int16:
		return nil, &InvalidPixelTypeError{TypeName: "int16"}
	case [][]int32:
		return nil, &InvalidPixelTypeError{TypeName: "int32"}
	case [][]int64:
		return nil, &InvalidPixelTypeError{TypeName: "int64"}
	case [][]float32:
		return nil, &InvalidPixelTypeError{TypeName: "float32"}
	case [][]float64:
		return nil, &InvalidPixelTypeError{TypeName: "float64"}
	default:
		return nil, &InvalidPixelTypeError{TypeName: fmt.Sprintf("%T", img)}
	}
}

// NewGridUint8 builds a grid from 8-bit pixel rows.
func NewGridUint8(rows [][]uint8) (*PixelGrid, error) {
	return gridFromRows(rows, func(v uint8) Intensity { return Intensity(v) })
}

// NewGridUint16 builds a grid from 16-bit pixel rows.
func NewGridUint16(rows [][]uint16) (*PixelGrid, error) {
	return gridFromRows(rows, func(v uint16) Intensity { return Intensity(v) })
}

// NewGridUint32 builds a grid from 32-bit pixel rows.
func NewGridUint32(rows [][]uint32) (*PixelGrid, error) {
	return gridFromRows(rows, func(v uint32) Intensity { return Intensity(v) })
}

// NewGridUint64 builds a grid from 64-bit pixel rows.
func NewGridUint64(rows [][]uint64) (*PixelGrid, error) {
	return gridFromRows(rows, func(v uint64) Intensity { return Intensity(v) })
}

// FromGray builds a grid from a standard grayscale image.
func FromGray(img *image.Gray) (*PixelGrid, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()
	if rows <= 0 || cols <= 0 {
		return nil, &DimensionError{Rows: rows, Cols: cols}
	}

	pixels := make([]Intensity, 0, rows*cols)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, Intensity(img.GrayAt(x, y).Y))
		}
	}

	return &PixelGrid{rows: rows, cols: cols, pixels: pixels}, nil
}

func gridFromRows[T any](rows [][]T, convert func(T) Intensity) (*PixelGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		cols := 0
		if len(rows) > 0 {
			cols = len(rows[0])
		}
		return nil, &DimensionError{Rows: len(rows), Cols: cols}
	}

	cols := len(rows[0])
	pixels := make([]Intensity, 0, len(rows)*cols)
	for y, row := range rows {
		if len(row) != cols {
			return nil, &DimensionError{Rows: len(rows), Cols: cols, Ragged: true, Row: y, Got: len(row)}
		}
		for _, v := range row {
			pixels = append(pixels, convert(v))
		}
	}

	return &PixelGrid{rows: len(rows), cols: cols, pixels: pixels}, nil
}

// Rows returns the number of pixel rows.
func (g *PixelGrid) Rows() int {
	return g.rows
}

// Cols returns the number of pixel columns.
func (g *PixelGrid) Cols() int {
	return g.cols
}

// TotalPixels returns rows x cols.
func (g *PixelGrid) TotalPixels() int {
	return g.rows * g.cols
}

// At returns the intensity at row y, column x.
func (g *PixelGrid) At(y, x int) Intensity {
	return g.pixels[y*g.cols+x]
}

// ForEach visits every pixel in row-major order.
func (g *PixelGrid) ForEach(visit func(v Intensity)) {
	for _, v := range g.pixels {
		visit(v)
	}
}
