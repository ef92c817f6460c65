// Package otsu computes Otsu's threshold for single-channel images of
// unsigned integer intensities: the intensity cut-point that maximizes the
// inter-class variance between background and foreground pixels.
//
// N. Otsu, A Threshold Selection Method from Gray-Level Histograms,
// IEEE Trans. Syst., Man, Cybern. 9 (1979) 62-66.
package otsu

import (
	"fmt"

	"otsu-thresholder/internal/debug"
	"otsu-thresholder/internal/logger"
	"otsu-thresholder/internal/models"
	"otsu-thresholder/internal/processing/histogram"
	"otsu-thresholder/internal/processing/threshold"
)

// Result is the verbose output of a threshold computation. For an image with
// a single unique intensity there is no split to evaluate, so Intensities,
// Frequencies and VarianceCurve are nil and only Threshold is set.
type Result struct {
	Threshold models.Intensity

	// Intensities holds the sorted unique intensity values of the image.
	Intensities []models.Intensity
	// Frequencies holds the occurrence count of each unique intensity.
	Frequencies []int
	// VarianceCurve holds the inter-class variance per candidate split,
	// aligned index-for-index with Intensities. The trailing entry is zero:
	// the last intensity is never a viable split and is not evaluated.
	VarianceCurve []float64
}

// Finder computes Otsu thresholds. The zero-cost default is silent; inject a
// logger with NewFinderWithLogger to trace computation steps.
type Finder struct {
	histogramCalc *histogram.Builder
	thresholdCalc *threshold.OtsuCalculator
	debugManager  *debug.Manager
}

func NewFinder() *Finder {
	return NewFinderWithLogger(nil)
}

func NewFinderWithLogger(log logger.Logger) *Finder {
	return &Finder{
		histogramCalc: histogram.NewBuilder(),
		thresholdCalc: threshold.NewOtsuCalculator(),
		debugManager:  debug.NewManager(log),
	}
}

// Threshold computes the Otsu threshold of img and returns only the scalar
// cut-point. img may be a *models.PixelGrid, a 2D slice of any unsigned
// integer kind, or an *image.Gray; signed or floating-point element types
// are rejected with a *models.InvalidPixelTypeError before any computation.
func (f *Finder) Threshold(img any) (models.Intensity, error) {
	result, err := f.compute(img, false)
	if err != nil {
		return 0, err
	}
	return result.Threshold, nil
}

// ThresholdVerbose computes the Otsu threshold of img and additionally
// reports the unique intensities, their frequencies, and the inter-class
// variance curve used to select the threshold.
func (f *Finder) ThresholdVerbose(img any) (*Result, error) {
	return f.compute(img, true)
}

// compute is the single implementation behind both modes; verbose only
// controls whether the diagnostic slices are carried into the result.
func (f *Finder) compute(img any, verbose bool) (*Result, error) {
	grid, err := models.GridFrom(img)
	if err != nil {
		return nil, err
	}

	histStart := f.debugManager.StartTiming("histogram")
	dist, err := f.histogramCalc.Build(grid)
	if err != nil {
		return nil, fmt.Errorf("histogram extraction failed: %w", err)
	}
	f.debugManager.EndTiming("histogram", histStart)
	f.debugManager.LogHistogramStatistics(dist.UniqueCount(), dist.TotalPixels)

	// Degenerate case: a single unique intensity is its own threshold and
	// leaves nothing to scan.
	if dist.UniqueCount() == 1 {
		return &Result{Threshold: dist.Intensities[0]}, nil
	}

	scanStart := f.debugManager.StartTiming("variance_scan")
	scan, err := f.thresholdCalc.Calculate(dist)
	if err != nil {
		return nil, fmt.Errorf("threshold scan failed: %w", err)
	}
	f.debugManager.EndTiming("variance_scan", scanStart)
	f.debugManager.LogThresholdCalculation(uint64(scan.Threshold), scan.MaxVariance)

	result := &Result{Threshold: scan.Threshold}
	if verbose {
		result.Intensities = dist.Intensities
		result.Frequencies = dist.Counts
		result.VarianceCurve = scan.VarianceCurve
	}

	return result, nil
}

// ApplyThreshold maps img onto a binary mask: pixels at or below the Otsu
// threshold become 0, pixels above it become 255.
func (f *Finder) ApplyThreshold(img any) (*models.PixelGrid, error) {
	grid, err := models.GridFrom(img)
	if err != nil {
		return nil, err
	}

	t, err := f.Threshold(grid)
	if err != nil {
		return nil, err
	}

	return threshold.NewBinaryApplier().Apply(grid, t)
}

// Threshold computes the Otsu threshold of img with a default Finder.
func Threshold(img any) (models.Intensity, error) {
	return NewFinder().Threshold(img)
}

// ThresholdVerbose computes the verbose Otsu result of img with a default
// Finder.
func ThresholdVerbose(img any) (*Result, error) {
	return NewFinder().ThresholdVerbose(img)
}
