package entity

import (
	"fmt"

	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
)

func NewClock(w *ecs.World) (ecs.Entity, error) {
	clock := ecs.CreateEntity(w)
	if err := ecs.Add(w, clock, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("clock: add clock component: %w", err)
	}
	return clock, nil
}
