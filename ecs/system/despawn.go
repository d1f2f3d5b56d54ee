package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
)

// OffscreenDespawnSystem destroys entities whose bounds leave the camera view.
// An entity is only destroyed after it has been inside the view at least once.
type OffscreenDespawnSystem struct{}

func NewOffscreenDespawnSystem() *OffscreenDespawnSystem { return &OffscreenDespawnSystem{} }

func (s *OffscreenDespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	view, ok := mainCamera(w)
	if !ok {
		return
	}
	bounds := view.Bounds()

	ecs.ForEach2(w, component.OffscreenDespawnComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, d *component.OffscreenDespawn, t *component.Transform) {
		if bounds.Intersects(cp.NewBBForCircle(t.Position(), d.Radius)) {
			d.Visible = true
			return
		}
		if d.Visible {
			ecs.DestroyEntity(w, e)
		}
	})
}

// TTLSystem counts down frame lifetimes. It backs up OffscreenDespawnSystem
// for projectiles that never enter the view.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem { return &TTLSystem{} }

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
