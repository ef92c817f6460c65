package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otsu-thresholder/otsu"
)

func TestRenderReport(t *testing.T) {
	t.Parallel()

	result, err := otsu.ThresholdVerbose([][]uint8{
		{10, 10, 10, 10},
		{200, 200, 200, 200},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, result))

	html := buf.String()
	assert.Contains(t, html, "Intensity Histogram")
	assert.Contains(t, html, "Inter-Class Variance")
	assert.Contains(t, html, "frequency")
	assert.Contains(t, html, "var_between")
}

func TestRenderReportRejectsMissingDiagnostics(t *testing.T) {
	t.Parallel()

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		assert.Error(t, RenderReport(&buf, nil))
	})

	t.Run("degenerate result", func(t *testing.T) {
		t.Parallel()
		result, err := otsu.ThresholdVerbose([][]uint8{{9, 9}})
		require.NoError(t, err)

		var buf bytes.Buffer
		assert.Error(t, RenderReport(&buf, result))
	})
}
