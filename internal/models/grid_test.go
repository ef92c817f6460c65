package models

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFromAcceptsUnsignedKinds(t *testing.T) {
	t.Parallel()

	t.Run("uint8", func(t *testing.T) {
		t.Parallel()
		grid, err := GridFrom([][]uint8{{1, 2}, {3, 4}})
		require.NoError(t, err)
		assert.Equal(t, 2, grid.Rows())
		assert.Equal(t, 2, grid.Cols())
		assert.Equal(t, Intensity(3), grid.At(1, 0))
	})

	t.Run("uint16", func(t *testing.T) {
		t.Parallel()
		grid, err := GridFrom([][]uint16{{65535, 0}})
		require.NoError(t, err)
		assert.Equal(t, Intensity(65535), grid.At(0, 0))
	})

	t.Run("uint32", func(t *testing.T) {
		t.Parallel()
		grid, err := GridFrom([][]uint32{{1 << 30}})
		require.NoError(t, err)
		assert.Equal(t, Intensity(1<<30), grid.At(0, 0))
	})

	t.Run("uint64", func(t *testing.T) {
		t.Parallel()
		grid, err := GridFrom([][]uint64{{1 << 40}})
		require.NoError(t, err)
		assert.Equal(t, Intensity(1<<40), grid.At(0, 0))
	})

	t.Run("existing grid passes through", func(t *testing.T) {
		t.Parallel()
		grid, err := NewGridUint8([][]uint8{{7}, {9}})
		require.NoError(t, err)

		same, err := GridFrom(grid)
		require.NoError(t, err)
		assert.Same(t, grid, same)
	})
}

func TestGridFromRejectsSignedAndFloatKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
	}{
		{"int", [][]int{{1}}},
		{"int8", [][]int8{{1}}},
		{"int16", [][]int16{{1}}},
		{"int32", [][]int32{{1}}},
		{"int64", [][]int64{{1}}},
		{"float32", [][]float32{{1}}},
		{"float64", [][]float64{{1}}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			grid, err := GridFrom(tc.input)
			assert.Nil(t, grid)

			var typeErr *InvalidPixelTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tc.name, typeErr.TypeName)
			assert.Contains(t, err.Error(), tc.name)
			assert.Contains(t, err.Error(), "unsigned integers")
		})
	}
}

func TestGridFromRejectsUnknownTypes(t *testing.T) {
	t.Parallel()

	_, err := GridFrom("not an image")

	var typeErr *InvalidPixelTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "string", typeErr.TypeName)
}

func TestGridConstructionRejectsDegenerateShapes(t *testing.T) {
	t.Parallel()

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		_, err := NewGridUint8([][]uint8{})
		var dimErr *DimensionError
		require.ErrorAs(t, err, &dimErr)
	})

	t.Run("empty rows", func(t *testing.T) {
		t.Parallel()
		_, err := NewGridUint8([][]uint8{{}, {}})
		var dimErr *DimensionError
		require.ErrorAs(t, err, &dimErr)
	})

	t.Run("ragged rows", func(t *testing.T) {
		t.Parallel()
		_, err := NewGridUint8([][]uint8{{1, 2}, {3}})
		var dimErr *DimensionError
		require.ErrorAs(t, err, &dimErr)
		assert.Contains(t, err.Error(), "ragged")
	})

	t.Run("pixel count mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := NewGrid(2, 2, []Intensity{1, 2, 3})
		require.Error(t, err)
	})
}

func TestGridCopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]uint8{{10, 20}}
	grid, err := NewGridUint8(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, Intensity(10), grid.At(0, 0))
}

func TestFromGray(t *testing.T) {
	t.Parallel()

	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.Pix = []uint8{1, 2, 3, 4, 5, 6}

	grid, err := FromGray(img)
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 3, grid.Cols())
	assert.Equal(t, Intensity(6), grid.At(1, 2))
}

func TestForEachVisitsRowMajor(t *testing.T) {
	t.Parallel()

	grid, err := NewGridUint8([][]uint8{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []Intensity
	grid.ForEach(func(v Intensity) { seen = append(seen, v) })
	assert.Equal(t, []Intensity{1, 2, 3, 4}, seen)
}
