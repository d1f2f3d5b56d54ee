package component

import "github.com/milk9111/bulletboss/common"

// Camera is the main orthographic camera. Its Transform holds the world
// point under the screen center.
type Camera struct {
	HalfHeight float64
	View       common.Projection
}

var CameraComponent = NewComponent[Camera]()
