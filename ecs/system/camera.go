package system

import (
	"github.com/milk9111/bulletboss/common"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
)

// CameraSystem refreshes the main camera's projection for the current screen
// size.
type CameraSystem struct {
	screenSize func() (float64, float64)
}

// NewCameraSystem builds a camera system. A nil screenSize uses the base
// resolution.
func NewCameraSystem(screenSize func() (float64, float64)) *CameraSystem {
	if screenSize == nil {
		screenSize = func() (float64, float64) { return common.BaseWidth, common.BaseHeight }
	}
	return &CameraSystem{screenSize: screenSize}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	sw, sh := cs.screenSize()
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, t *component.Transform) {
		cam.View = common.Projection{
			CenterX:    t.X,
			CenterY:    t.Y,
			HalfHeight: cam.HalfHeight,
			ScreenW:    sw,
			ScreenH:    sh,
		}
	})
}

// mainCamera returns the first camera's projection once it has been computed.
func mainCamera(w *ecs.World) (common.Projection, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return common.Projection{}, false
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok || !cam.View.Ready() {
		return common.Projection{}, false
	}
	return cam.View, true
}
