package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/prefabs"
)

var defaultBossColor = color.NRGBA{R: 0xb0, G: 0x3a, B: 0x48, A: 0xff}

// BossProjectiles holds the resolved projectile prefab for each mode.
type BossProjectiles struct {
	Circular component.ProjectileTemplate
	Barrier  component.ProjectileTemplate
	Spiral   component.ProjectileTemplate
}

// BossFromSpec converts a boss prefab into its component configuration.
func BossFromSpec(spec *prefabs.BossSpec, projectiles BossProjectiles) *component.Boss {
	spec.ApplyDefaults()
	return &component.Boss{
		FirePointX:    spec.FirePoint.X,
		FirePointY:    spec.FirePoint.Y,
		MoveSpeed:     spec.MoveSpeed,
		RotationSpeed: spec.RotationSpeed,
		ModeDuration:  spec.ModeDuration,
		TotalDuration: spec.TotalDuration,
		Circular: component.CircularPattern{
			TargetX:    spec.Circular.Target.X,
			TargetY:    spec.Circular.Target.Y,
			FireRate:   spec.Circular.FireRate,
			Count:      spec.Circular.Count,
			Step:       spec.Circular.Step,
			Projectile: projectiles.Circular,
		},
		Barrier: component.BarrierPattern{
			FireRate:      spec.Barrier.FireRate,
			HalfWidth:     spec.Barrier.HalfWidth,
			Spacing:       spec.Barrier.Spacing,
			Heading:       *spec.Barrier.Heading,
			SwayAmplitude: spec.Barrier.SwayAmplitude,
			SwayFrequency: spec.Barrier.SwayFrequency,
			Projectile:    projectiles.Barrier,
		},
		Spiral: component.SpiralPattern{
			FireRate:   spec.Spiral.FireRate,
			Spin:       spec.Spiral.Spin,
			Projectile: projectiles.Spiral,
		},
	}
}

func NewBoss(w *ecs.World, spec *prefabs.BossSpec, projectiles BossProjectiles) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("boss: nil spec")
	}

	boss := ecs.CreateEntity(w)
	if err := ecs.Add(w, boss, component.BossComponent.Kind(), BossFromSpec(spec, projectiles)); err != nil {
		return 0, fmt.Errorf("boss: add boss component: %w", err)
	}
	if err := ecs.Add(w, boss, component.BossRuntimeComponent.Kind(), &component.BossRuntime{}); err != nil {
		return 0, fmt.Errorf("boss: add runtime: %w", err)
	}
	if err := ecs.Add(w, boss, component.TransformComponent.Kind(), transformFromSpec(spec.Transform)); err != nil {
		return 0, fmt.Errorf("boss: add transform: %w", err)
	}

	kind := component.ShapeKind(spec.Shape.Kind)
	if kind == "" {
		kind = component.ShapeRect
	}
	if err := ecs.Add(w, boss, component.ShapeComponent.Kind(), &component.Shape{
		Kind:   kind,
		Radius: spec.Shape.Radius,
		Width:  spec.Shape.Width,
		Height: spec.Shape.Height,
		Color:  spec.Shape.Color.NRGBA(defaultBossColor),
	}); err != nil {
		return 0, fmt.Errorf("boss: add shape: %w", err)
	}
	if err := ecs.Add(w, boss, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("boss: add layer: %w", err)
	}

	return boss, nil
}
