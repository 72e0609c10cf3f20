package carousel

import "math"

// ViewportSize returns the world-space size of the view frustum cross-section
// at distance from a perspective camera with vertical field of view fovyDeg.
func ViewportSize(fovyDeg, distance, aspect float64) (width, height float64) {
	height = 2 * distance * math.Tan(fovyDeg*math.Pi/360)
	width = height * aspect
	return width, height
}

// ZoomScale is the factor that grows an item of the given size to fill the
// viewport when it becomes active.
func ZoomScale(viewportW, viewportH, itemW, itemH float64) (x, y float64) {
	if itemW <= 0 || itemH <= 0 {
		return 1, 1
	}
	return viewportW / itemW, viewportH / itemH
}
