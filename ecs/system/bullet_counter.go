package system

import (
	"fmt"

	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
)

// BulletCounterSystem tallies live projectiles per class and writes the total
// to the counter's text surface.
type BulletCounterSystem struct{}

func NewBulletCounterSystem() *BulletCounterSystem { return &BulletCounterSystem{} }

func (s *BulletCounterSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var small, medium, big int
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(_ ecs.Entity, p *component.Projectile) {
		switch p.Class {
		case component.ProjectileSmall:
			small++
		case component.ProjectileMedium:
			medium++
		case component.ProjectileBig:
			big++
		}
	})

	ecs.ForEach2(w, component.BulletCounterComponent.Kind(), component.TextComponent.Kind(), func(_ ecs.Entity, counter *component.BulletCounter, text *component.Text) {
		counter.Small = small
		counter.Medium = medium
		counter.Big = big
		counter.Total = small + medium + big

		label := counter.Label
		if label == "" {
			label = "Bullets"
		}
		nextText := fmt.Sprintf("%s: %d", label, counter.Total)
		if counter.RenderedText != nextText {
			text.Value = nextText
			counter.RenderedText = nextText
		}
	})
}
