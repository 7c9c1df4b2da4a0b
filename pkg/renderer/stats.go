package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	PrimaryHits  int           // Primary rays that hit a primitive
	LuminanceSum float64       // Accumulated pixel luminance
	NumTiles     int           // Number of tiles rendered
	NumWorkers   int           // Workers used for the render
	RenderTime   time.Duration // Wall-clock render time
}

// Merge folds per-tile counters into the aggregate
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryHits += other.PrimaryHits
	s.LuminanceSum += other.LuminanceSum
}

// HitRatio returns the fraction of primary rays that hit geometry
func (s *RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.TotalPixels)
}

// AverageLuminance returns the mean perceptual brightness of the image
func (s *RenderStats) AverageLuminance() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return s.LuminanceSum / float64(s.TotalPixels)
}
