package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bulletboss/common"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
	"github.com/milk9111/bulletboss/ecs/entity"
)

// BossSystem runs the timed circular -> barrier -> spiral rotation until the
// encounter time runs out.
type BossSystem struct{}

func NewBossSystem() *BossSystem { return &BossSystem{} }

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	clock, ok := sceneClock(w)
	if !ok {
		return
	}
	now, dt := clock.Elapsed, clock.Delta

	ecs.ForEach3(w,
		component.BossComponent.Kind(),
		component.BossRuntimeComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, boss *component.Boss, rt *component.BossRuntime, t *component.Transform) {
			if !rt.Initialized {
				rt.Initialized = true
				rt.Mode = component.AttackCircular
				rt.ModeTime = boss.ModeDuration
				rt.TotalTime = boss.TotalDuration
				rt.NextFire = 0
			}

			if rt.TotalTime <= 0 {
				if !rt.Finished {
					rt.Finished = true
					log.Printf("boss: entity=%s pattern rotation finished after %d volleys", e, rt.Volleys)
				}
				return
			}

			rt.TotalTime -= dt
			rt.ModeTime -= dt
			if rt.ModeTime <= 0 {
				rt.Mode = rt.Mode.Next()
				rt.ModeTime = boss.ModeDuration
			}

			switch rt.Mode {
			case component.AttackCircular:
				s.circular(w, boss, rt, t, now, dt)
			case component.AttackBarrier:
				s.barrier(w, boss, rt, t, now)
			case component.AttackSpiral:
				s.spiral(w, boss, rt, t, now, dt)
			}
		})
}

func (s *BossSystem) circular(w *ecs.World, boss *component.Boss, rt *component.BossRuntime, t *component.Transform, now, dt float64) {
	p := &boss.Circular
	target := cp.Vector{X: p.TargetX, Y: p.TargetY}
	t.SetPosition(common.MoveTowards(t.Position(), target, boss.MoveSpeed*dt))

	if now <= rt.NextFire {
		return
	}
	rt.NextFire = now + p.FireRate

	origin := firePoint(boss, t)
	for i := 0; i < p.Count; i++ {
		angle := float64(i)*p.Step + now*boss.RotationSpeed
		s.spawn(w, p.Projectile, origin, common.DegToRad(angle))
	}
	s.volley(w, rt, component.AttackCircular, p.Projectile.Class, p.Count)
}

func (s *BossSystem) barrier(w *ecs.World, boss *component.Boss, rt *component.BossRuntime, t *component.Transform, now float64) {
	p := &boss.Barrier
	if now > rt.NextFire {
		rt.NextFire = now + p.FireRate

		origin := firePoint(boss, t)
		rotation := common.DegToRad(p.Heading)
		for i := -p.HalfWidth; i <= p.HalfWidth; i++ {
			pos := cp.Vector{X: origin.X + float64(i)*p.Spacing, Y: origin.Y}
			s.spawn(w, p.Projectile, pos, rotation)
		}
		s.volley(w, rt, component.AttackBarrier, p.Projectile.Class, 2*p.HalfWidth+1)
	}

	t.X = math.Sin(now*p.SwayFrequency) * p.SwayAmplitude
}

func (s *BossSystem) spiral(w *ecs.World, boss *component.Boss, rt *component.BossRuntime, t *component.Transform, now, dt float64) {
	p := &boss.Spiral

	// The world point under the middle of the screen; the origin when no
	// camera has been projected yet.
	var center cp.Vector
	if view, ok := mainCamera(w); ok {
		center = view.ScreenToWorld(view.ScreenW/2, view.ScreenH/2)
	}
	t.SetPosition(common.MoveTowards(t.Position(), center, boss.MoveSpeed*dt))

	if now <= rt.NextFire {
		return
	}
	rt.NextFire = now + p.FireRate

	angle := now * boss.RotationSpeed * p.Spin
	s.spawn(w, p.Projectile, firePoint(boss, t), common.DegToRad(angle))
	s.volley(w, rt, component.AttackSpiral, p.Projectile.Class, 1)
}

func (s *BossSystem) spawn(w *ecs.World, tmpl component.ProjectileTemplate, pos cp.Vector, rotation float64) {
	if _, err := entity.SpawnProjectile(w, tmpl, pos, rotation); err != nil {
		log.Printf("boss: spawn %s projectile: %v", tmpl.Class, err)
	}
}

func (s *BossSystem) volley(w *ecs.World, rt *component.BossRuntime, mode component.AttackMode, class component.ProjectileClass, count int) {
	rt.Volleys++
	w.Events().Push(ecs.Event{
		Type: component.VolleyFiredEvent,
		Data: component.VolleyFired{Mode: mode, Class: class, Count: count},
	})
}

func firePoint(boss *component.Boss, t *component.Transform) cp.Vector {
	return cp.Vector{X: t.X + boss.FirePointX, Y: t.Y + boss.FirePointY}
}
