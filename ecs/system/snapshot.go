package system

import (
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time dump of the encounter used by the debug
// overlay and clipboard export.
type Snapshot struct {
	Frame   int             `yaml:"frame"`
	Elapsed float64         `yaml:"elapsed"`
	Bosses  []BossSnapshot  `yaml:"bosses"`
	Bullets CounterSnapshot `yaml:"bullets"`
}

type BossSnapshot struct {
	Entity    uint64  `yaml:"entity"`
	Mode      string  `yaml:"mode"`
	ModeTime  float64 `yaml:"mode_time"`
	TotalTime float64 `yaml:"total_time"`
	NextFire  float64 `yaml:"next_fire"`
	Volleys   int     `yaml:"volleys"`
	Finished  bool    `yaml:"finished"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
}

type CounterSnapshot struct {
	Small  int `yaml:"small"`
	Medium int `yaml:"medium"`
	Big    int `yaml:"big"`
	Total  int `yaml:"total"`
}

func TakeSnapshot(w *ecs.World) Snapshot {
	var snap Snapshot
	if clock, ok := sceneClock(w); ok {
		snap.Frame = clock.Frame
		snap.Elapsed = clock.Elapsed
	}

	ecs.ForEach3(w,
		component.BossComponent.Kind(),
		component.BossRuntimeComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.Boss, rt *component.BossRuntime, t *component.Transform) {
			snap.Bosses = append(snap.Bosses, BossSnapshot{
				Entity:    uint64(e),
				Mode:      rt.Mode.String(),
				ModeTime:  rt.ModeTime,
				TotalTime: rt.TotalTime,
				NextFire:  rt.NextFire,
				Volleys:   rt.Volleys,
				Finished:  rt.Finished,
				X:         t.X,
				Y:         t.Y,
			})
		})

	if e, ok := ecs.First(w, component.BulletCounterComponent.Kind()); ok {
		if counter, ok := ecs.Get(w, e, component.BulletCounterComponent.Kind()); ok {
			snap.Bullets = CounterSnapshot{
				Small:  counter.Small,
				Medium: counter.Medium,
				Big:    counter.Big,
				Total:  counter.Total,
			}
		}
	}
	return snap
}

func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
