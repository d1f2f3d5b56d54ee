package system

import (
	"github.com/milk9111/bulletboss/common"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
)

// ClockSystem advances the scene clock by a fixed step per update.
type ClockSystem struct {
	delta float64
}

func NewClockSystem(tps int) *ClockSystem {
	if tps <= 0 {
		tps = common.DefaultTPS
	}
	return &ClockSystem{delta: 1 / float64(tps)}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.Frame++
		clock.Delta = s.delta
		clock.Elapsed += s.delta
	})
}

// sceneClock returns the clock singleton, if the scene has one.
func sceneClock(w *ecs.World) (*component.Clock, bool) {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ClockComponent.Kind())
}
