package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/prefabs"
)

var defaultProjectileColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// ProjectileTemplateFromSpec resolves a projectile prefab into the template the
// boss instantiates from.
func ProjectileTemplateFromSpec(spec *prefabs.ProjectileSpec) component.ProjectileTemplate {
	if spec == nil {
		return component.ProjectileTemplate{}
	}
	return component.ProjectileTemplate{
		Class:     component.ProjectileClass(spec.Class),
		Speed:     spec.Speed,
		Radius:    spec.Radius,
		Color:     spec.Color.NRGBA(defaultProjectileColor),
		Layer:     spec.RenderLayer.Index,
		TTLFrames: spec.TTLFrames,
	}
}

// SpawnProjectile instantiates a projectile at pos whose local up axis is
// rotated rotation radians counter-clockwise.
func SpawnProjectile(w *ecs.World, tmpl component.ProjectileTemplate, pos cp.Vector, rotation float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        pos.X,
		Y:        pos.Y,
		ScaleX:   1,
		ScaleY:   1,
		Rotation: rotation,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{Speed: tmpl.Speed, Class: tmpl.Class}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile component: %w", err)
	}
	if err := ecs.Add(w, e, component.OffscreenDespawnComponent.Kind(), &component.OffscreenDespawn{Radius: tmpl.Radius}); err != nil {
		return 0, fmt.Errorf("projectile: add despawn: %w", err)
	}
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{
		Kind:   component.ShapeCircle,
		Radius: tmpl.Radius,
		Color:  tmpl.Color,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add shape: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: tmpl.Layer}); err != nil {
		return 0, fmt.Errorf("projectile: add layer: %w", err)
	}
	if tmpl.TTLFrames > 0 {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: tmpl.TTLFrames}); err != nil {
			return 0, fmt.Errorf("projectile: add ttl: %w", err)
		}
	}
	return e, nil
}
