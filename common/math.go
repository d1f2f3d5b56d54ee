package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

var worldUp = cp.Vector{X: 0, Y: 1}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// UpFromRotation returns the local up axis of something rotated rot radians
// counter-clockwise.
func UpFromRotation(rot float64) cp.Vector {
	return worldUp.Rotate(cp.ForAngle(rot))
}

// MoveTowards steps from toward to by at most maxDelta without overshooting.
func MoveTowards(from, to cp.Vector, maxDelta float64) cp.Vector {
	if maxDelta <= 0 {
		return from
	}
	return from.LerpConst(to, maxDelta)
}
