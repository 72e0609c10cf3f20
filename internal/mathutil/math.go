package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// RoundHalfUp rounds to the nearest integer with ties going toward +Inf,
// so -2.5 rounds to -2 and 2.5 rounds to 3.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Snap rounds v to the nearest multiple of step counted from origin.
func Snap(v, origin, step float64) float64 {
	if step <= 0 {
		return v
	}
	return origin + math.Round((v-origin)/step)*step
}
