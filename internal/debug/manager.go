package debug

import (
	"sync"
	"time"

	"otsu-thresholder/internal/logger"
)

// Manager records per-step timings for threshold computations and emits
// structured diagnostic events through the injected logger.
type Manager struct {
	mu      sync.Mutex
	log     logger.Logger
	timings map[string][]time.Duration
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{
		log:     log,
		timings: make(map[string][]time.Duration),
	}
}

func (dm *Manager) StartTiming(step string) time.Time {
	return time.Now()
}

func (dm *Manager) EndTiming(step string, startTime time.Time) {
	duration := time.Since(startTime)

	dm.mu.Lock()
	dm.timings[step] = append(dm.timings[step], duration)
	dm.mu.Unlock()

	dm.log.Debug("ThresholdDebug", "step completed", map[string]interface{}{
		"step":        step,
		"duration_us": duration.Microseconds(),
	})
}

// LogHistogramStatistics logs histogram extraction results.
func (dm *Manager) LogHistogramStatistics(uniqueCount, totalPixels int) {
	dm.log.Debug("ThresholdDebug", "histogram built", map[string]interface{}{
		"unique_intensities": uniqueCount,
		"total_pixels":       totalPixels,
	})
}

// LogThresholdCalculation logs the selected threshold and its variance.
func (dm *Manager) LogThresholdCalculation(threshold uint64, maxVariance float64) {
	dm.log.Debug("ThresholdDebug", "threshold selected", map[string]interface{}{
		"threshold":    threshold,
		"max_variance": maxVariance,
	})
}

// StepStats summarizes recorded timings for one step.
type StepStats struct {
	Count int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// PerformanceReport returns aggregate timing statistics per step.
func (dm *Manager) PerformanceReport() map[string]StepStats {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	report := make(map[string]StepStats, len(dm.timings))
	for step, timings := range dm.timings {
		if len(timings) == 0 {
			continue
		}

		stats := StepStats{Count: len(timings), Min: timings[0], Max: timings[0]}
		for _, d := range timings {
			stats.Total += d
			if d < stats.Min {
				stats.Min = d
			}
			if d > stats.Max {
				stats.Max = d
			}
		}
		report[step] = stats
	}

	return report
}
