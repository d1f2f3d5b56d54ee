package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/prefabs"
)

var defaultTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewBulletCounter creates the counter entity together with the screen-space
// text surface it writes to.
func NewBulletCounter(w *ecs.World, spec *prefabs.BulletCounterSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("bullet counter: nil spec")
	}

	counter := ecs.CreateEntity(w)
	if err := ecs.Add(w, counter, component.BulletCounterComponent.Kind(), &component.BulletCounter{Label: spec.Label}); err != nil {
		return 0, fmt.Errorf("bullet counter: add counter component: %w", err)
	}
	if err := ecs.Add(w, counter, component.HUDTagComponent.Kind(), &component.HUDTag{}); err != nil {
		return 0, fmt.Errorf("bullet counter: add hud tag: %w", err)
	}
	if err := ecs.Add(w, counter, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("bullet counter: add screen-space: %w", err)
	}
	if err := ecs.Add(w, counter, component.TransformComponent.Kind(), transformFromSpec(spec.Transform)); err != nil {
		return 0, fmt.Errorf("bullet counter: add transform: %w", err)
	}
	if err := ecs.Add(w, counter, component.TextComponent.Kind(), &component.Text{
		Color: spec.Color.NRGBA(defaultTextColor),
		Size:  spec.Size,
	}); err != nil {
		return 0, fmt.Errorf("bullet counter: add text: %w", err)
	}
	if err := ecs.Add(w, counter, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("bullet counter: add layer: %w", err)
	}

	return counter, nil
}
