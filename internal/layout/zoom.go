package layout

import "math"

// Zoom bounds and the pixel density at zoom 1.0.
const (
	MinZoom  = 0.1
	MaxZoom  = 2.0
	ZoomStep = 0.1

	baseRowPx = 24  // pixels per half-hour row
	baseColPx = 120 // minimum day-column width in pixels
)

// Metrics are the density constants a renderer derives cell sizes from.
type Metrics struct {
	PixelsPerHalfHour float64
	MinColumnWidth    float64
}

// ClampZoom snaps a requested zoom factor to the nearest 0.1 step and
// bounds it to [0.1, 2.0].
func ClampZoom(zoom float64) float64 {
	z := math.Round(zoom/ZoomStep) * ZoomStep
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// Scale maps a zoom factor to renderer metrics. Pure; out-of-range factors
// are clamped first.
func Scale(zoom float64) Metrics {
	z := ClampZoom(zoom)
	return Metrics{
		PixelsPerHalfHour: baseRowPx * z,
		MinColumnWidth:    baseColPx * z,
	}
}
