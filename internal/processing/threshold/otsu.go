package threshold

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"otsu-thresholder/internal/models"
	"otsu-thresholder/internal/processing/histogram"
)

// Result holds the outcome of an Otsu threshold scan.
type Result struct {
	Threshold   models.Intensity
	MaxVariance float64

	// VarianceCurve has one entry per unique intensity. Entry n is the
	// inter-class variance of splitting at intensity n; the last entry is
	// always zero because the last intensity cannot separate two non-empty
	// classes and is never evaluated.
	VarianceCurve []float64
}

// OtsuCalculator selects the threshold maximizing inter-class variance.
type OtsuCalculator struct{}

func NewOtsuCalculator() *OtsuCalculator {
	return &OtsuCalculator{}
}

// Calculate scans every candidate threshold in ascending intensity order,
// maintaining the class-0 weight and mean incrementally. The running maximum
// is updated only on strict improvement, so ties keep the earliest
// (lowest-intensity) maximizer.
func (c *OtsuCalculator) Calculate(dist *histogram.Distribution) (*Result, error) {
	if dist == nil {
		return nil, fmt.Errorf("distribution is nil")
	}
	if dist.UniqueCount() < 2 {
		return nil, fmt.Errorf("distribution has insufficient unique intensities: %d", dist.UniqueCount())
	}

	values := make([]float64, len(dist.Intensities))
	for i, v := range dist.Intensities {
		values[i] = float64(v)
	}
	muTotal := stat.Mean(values, dist.Probabilities)

	result := &Result{
		VarianceCurve: make([]float64, 0, len(dist.Intensities)),
	}

	w0 := 0.0
	mu0 := 0.0

	// Every candidate's probability is positive, so w0New is never zero, and
	// class 1 always retains at least the last intensity's mass, so 1-w0
	// stays positive for every evaluated candidate.
	for n, candidate := range values[:len(values)-1] {
		p := dist.Probabilities[n]
		w0New := w0 + p
		mu0 = (mu0*w0 + candidate*p) / w0New
		w0 = w0New

		mu1 := (muTotal - w0*mu0) / (1 - w0)
		meanDiff := mu0 - mu1
		varBetween := w0 * (1 - w0) * meanDiff * meanDiff

		result.VarianceCurve = append(result.VarianceCurve, varBetween)

		if varBetween > result.MaxVariance {
			result.MaxVariance = varBetween
			result.Threshold = dist.Intensities[n]
		}
	}
	result.VarianceCurve = append(result.VarianceCurve, 0)

	return result, nil
}
