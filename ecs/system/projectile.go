package system

import (
	"github.com/milk9111/bulletboss/common"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
)

// ProjectileSystem moves projectiles along their local up axis.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	clock, ok := sceneClock(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
		step := common.UpFromRotation(t.Rotation).Mult(p.Speed * clock.Delta)
		t.SetPosition(t.Position().Add(step))
	})
}
